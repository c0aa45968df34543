package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Franchise is one guessable property (a movie, series, or game) with its
// attached questions.
type Franchise struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Title     string `json:"title"`
	Category  string `gorm:"index" json:"category"` // "movie", "series", "game"
	CreatedAt time.Time
	Tags      []Tag      `gorm:"many2many:franchise_tags;" json:"tags,omitempty"`
	Questions []Question `json:"questions,omitempty"`
}

type Tag struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex" json:"name"`
}

// Question is one disclosable unit of content. BaseClarity is set once at
// authoring time and never mutated by gameplay: low-resolution or
// low-contrast assets need a higher floor to stay guessable at hint 0.
type Question struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	FranchiseID uint         `gorm:"index" json:"franchise_id"`
	Kind        QuestionKind `gorm:"index" json:"kind"`
	Answer      string       `json:"answer"`
	MediaPath   string       `json:"media_path"`
	StopTime    float64      `json:"stop_time"`    // quote clips: playback stop timestamp, seconds
	BaseClarity float64      `json:"base_clarity"` // calibrated hardest-visible clarity floor
	CreatedAt   time.Time
}

// ActivityRecord is the durable per-solve event consumed by analytics.
// Solved=false rows are skips; they never award points.
type ActivityRecord struct {
	ID         uint   `gorm:"primaryKey"`
	PlayerID   string `gorm:"index"`
	QuestionID uint   `gorm:"index"`
	Solved     bool
	Attempts   int
	HintsUsed  int
	TimeTaken  int
	CreatedAt  time.Time
}

type PlayerScore struct {
	PlayerID    string `gorm:"primaryKey" json:"player_id"`
	TotalPoints int    `json:"total_points"`
}

const solvePoints = 100

// Store wraps the sqlite content database. Gameplay only ever reads the
// question tables; the single write path is activity/score bookkeeping.
type Store struct {
	db *gorm.DB
}

func openStore(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Discard,
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.AutoMigrate(&Franchise{}, &Tag{}, &Question{}, &ActivityRecord{}, &PlayerScore{}); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	return &Store{db: db}, nil
}

// QuestionSet is what the question feed serves: one random franchise and
// one random question of each kind, where available.
type QuestionSet struct {
	FranchiseID uint      `json:"franchise_id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Quote       *Question `json:"quote,omitempty"`
	Character   *Question `json:"character,omitempty"`
	Banner      *Question `json:"banner,omitempty"`
}

func (s *Store) randomQuestion(franchiseID uint, kind QuestionKind) *Question {
	var q Question
	err := s.db.Where("franchise_id = ? AND kind = ?", franchiseID, kind).
		Order("RANDOM()").
		First(&q).Error
	if err != nil {
		return nil
	}
	return &q
}

// RandomQuestionSet picks a random franchise in the category and one
// question per kind from it.
func (s *Store) RandomQuestionSet(category string) (*QuestionSet, error) {
	var f Franchise
	err := s.db.Where("category = ?", category).Order("RANDOM()").First(&f).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &QuestionSet{
		FranchiseID: f.ID,
		Title:       f.Title,
		Category:    f.Category,
		Quote:       s.randomQuestion(f.ID, KindQuote),
		Character:   s.randomQuestion(f.ID, KindCharacter),
		Banner:      s.randomQuestion(f.ID, KindBanner),
	}, nil
}

func (s *Store) QuestionByID(id uint) (*Question, error) {
	var q Question
	err := s.db.First(&q, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// RecordActivity appends one durable activity event. Genuine solves also
// credit the player's score; skips do not.
func (s *Store) RecordActivity(rec ActivityRecord) error {
	if err := s.db.Create(&rec).Error; err != nil {
		return err
	}
	if !rec.Solved {
		return nil
	}

	score := PlayerScore{PlayerID: rec.PlayerID}
	if err := s.db.FirstOrCreate(&score, PlayerScore{PlayerID: rec.PlayerID}).Error; err != nil {
		return err
	}
	return s.db.Model(&PlayerScore{}).
		Where("player_id = ?", rec.PlayerID).
		UpdateColumn("total_points", gorm.Expr("total_points + ?", solvePoints)).Error
}

func (s *Store) PlayerPoints(playerID string) (int, error) {
	var score PlayerScore
	err := s.db.First(&score, "player_id = ?", playerID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return score.TotalPoints, nil
}

// SeedDemo loads a small playable content set. It is a no-op when the
// database already has franchises.
func (s *Store) SeedDemo() error {
	var count int64
	if err := s.db.Model(&Franchise{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	demo := []Franchise{
		{
			Title:    "The Dark Knight",
			Category: "movie",
			Tags:     []Tag{{Name: "superhero"}, {Name: "thriller"}},
			Questions: []Question{
				{Kind: KindQuote, Answer: "The Dark Knight", MediaPath: "uploads/dark_knight_quote.mp4", StopTime: 12.5},
				{Kind: KindCharacter, Answer: "The Dark Knight", MediaPath: "uploads/dark_knight_char.jpg", BaseClarity: 0.02},
				{Kind: KindBanner, Answer: "The Dark Knight", MediaPath: "uploads/dark_knight_banner.jpg", BaseClarity: 0.05},
			},
		},
		{
			Title:    "Breaking Bad",
			Category: "series",
			Tags:     []Tag{{Name: "crime"}, {Name: "drama"}},
			Questions: []Question{
				{Kind: KindQuote, Answer: "Say my name", MediaPath: "uploads/breaking_bad_quote.mp4", StopTime: 8},
				{Kind: KindCharacter, Answer: "Breaking Bad", MediaPath: "uploads/breaking_bad_char.jpg", BaseClarity: 0.1},
				{Kind: KindBanner, Answer: "Breaking Bad", MediaPath: "uploads/breaking_bad_banner.jpg", BaseClarity: 0.02},
			},
		},
		{
			Title:    "Portal 2",
			Category: "game",
			Tags:     []Tag{{Name: "puzzle"}},
			Questions: []Question{
				{Kind: KindQuote, Answer: "Portal 2", MediaPath: "uploads/portal2_quote.mp4", StopTime: 6},
				{Kind: KindBanner, Answer: "Portal 2", MediaPath: "uploads/portal2_banner.jpg", BaseClarity: 0.08},
			},
		},
	}

	for i := range demo {
		if err := s.db.Create(&demo[i]).Error; err != nil {
			return err
		}
	}
	return nil
}
