package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/julienschmidt/httprouter"
)

// serveQuestionFeed mirrors the legacy /api/content/random contract: a
// random franchise in the requested category with one question per kind.
func serveQuestionFeed(cfg *Config, store *Store, errs chan<- error) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		startTime := time.Now()

		category := r.URL.Query().Get("category")
		if category == "" {
			category = "movie"
		}

		set, err := store.RandomQuestionSet(category)
		if err != nil {
			errs <- err
			http.Error(w, "database error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		securityHeaders(cfg, w)

		if err := json.NewEncoder(w).Encode(set); err != nil {
			errs <- err
			return
		}

		logf(cfg, "SERVE: Question feed (%s) to %s in %s",
			category,
			realIP(r),
			time.Since(startTime).Round(time.Microsecond),
		)
	}
}

// serveImageProxy renders a question's image at a disclosure level. The
// caller supplies either an explicit clarity (?level=) or a hint count
// (?hint=) resolved against the question's calibrated floor; when both are
// present the explicit clarity wins, matching the legacy dual-path behavior.
func serveImageProxy(cfg *Config, store *Store, errs chan<- error) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		startTime := time.Now()

		id, err := strconv.ParseUint(ps.ByName("questionid"), 10, 32)
		if err != nil {
			http.Error(w, "invalid question id", http.StatusBadRequest)
			return
		}

		question, err := store.QuestionByID(uint(id))
		if err != nil {
			errs <- err
			http.Error(w, "database error", http.StatusInternalServerError)
			return
		}
		if question == nil || !question.Kind.usesImage() {
			http.Error(w, "image not found", http.StatusNotFound)
			return
		}

		var clarity float64
		query := r.URL.Query()
		switch {
		case query.Get("level") != "":
			clarity, err = strconv.ParseFloat(query.Get("level"), 64)
			if err != nil {
				http.Error(w, "invalid disclosure level", http.StatusBadRequest)
				return
			}
		case query.Get("hint") != "":
			hints, err := strconv.Atoi(query.Get("hint"))
			if err != nil || hints < 0 {
				http.Error(w, "invalid hint count", http.StatusBadRequest)
				return
			}
			clarity = clarityForHints(question.BaseClarity, hints)
		default:
			clarity = question.BaseClarity
		}

		fullPath, err := mediaFilePath(cfg, question.MediaPath)
		if err != nil {
			http.Error(w, "image not found", http.StatusNotFound)
			return
		}

		src, err := os.ReadFile(fullPath)
		if err != nil {
			// AssetNotFound is terminal for this render; no retry here.
			http.Error(w, "image not found", http.StatusNotFound)
			return
		}

		rendered, err := Pixelate(src, clarity)
		if err != nil {
			if errors.Is(err, ErrInvalidLevel) {
				http.Error(w, "invalid disclosure level", http.StatusBadRequest)
				return
			}
			errs <- err
			http.Error(w, "render failed", http.StatusInternalServerError)
			return
		}

		// Full-reveal renders pass the original bytes through, which may
		// not be JPEG.
		if clarity >= fullRevealClarity {
			w.Header().Set("Content-Type", http.DetectContentType(rendered))
		} else {
			w.Header().Set("Content-Type", "image/jpeg")
		}
		w.Header().Set("Cache-Control", "no-store")
		securityHeaders(cfg, w)

		written, err := w.Write(rendered)
		if err != nil {
			errs <- err
			return
		}

		logf(cfg, "SERVE: Render of question %d at clarity %.2f (%s) to %s in %s",
			question.ID,
			clarity,
			humanReadableSize(int64(written)),
			realIP(r),
			time.Since(startTime).Round(time.Microsecond),
		)
	}
}

type verifyRequest struct {
	QuestionID uint   `json:"question_id"`
	Guess      string `json:"guess"`
	Attempts   int    `json:"attempts"`
	Hints      int    `json:"hints"`
	TimeTaken  int    `json:"time_taken"`
}

type verifyResponse struct {
	Correct bool   `json:"correct"`
	Answer  string `json:"answer,omitempty"`
	Points  int    `json:"points,omitempty"`
}

// serveVerify is the stateless REST verification path: the caller keeps its
// own attempt/hint counters and the server only checks the guess, appending
// the durable activity event on a solve.
func serveVerify(cfg *Config, store *Store, errs chan<- error) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		startTime := time.Now()

		var req verifyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(req.Guess) == "" {
			http.Error(w, "empty guess", http.StatusBadRequest)
			return
		}

		question, err := store.QuestionByID(req.QuestionID)
		if err != nil {
			errs <- err
			http.Error(w, "database error", http.StatusInternalServerError)
			return
		}
		if question == nil {
			http.Error(w, "question not found", http.StatusNotFound)
			return
		}

		resp := verifyResponse{
			Correct: normalizeAnswer(req.Guess) == normalizeAnswer(question.Answer),
		}

		if resp.Correct {
			resp.Answer = question.Answer

			playerID := getOrSetPlayerID(w, r)
			if playerID != "" {
				rec := ActivityRecord{
					PlayerID:   playerID,
					QuestionID: question.ID,
					Solved:     true,
					Attempts:   req.Attempts,
					HintsUsed:  req.Hints,
					TimeTaken:  req.TimeTaken,
				}
				if err := store.RecordActivity(rec); err != nil {
					errs <- err
				} else if points, err := store.PlayerPoints(playerID); err == nil {
					resp.Points = points
				}
			}
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		securityHeaders(cfg, w)

		if err := json.NewEncoder(w).Encode(resp); err != nil {
			errs <- err
			return
		}

		logf(cfg, "SERVE: Verification of question %d (correct: %t) to %s in %s",
			req.QuestionID,
			resp.Correct,
			realIP(r),
			time.Since(startTime).Round(time.Microsecond),
		)
	}
}

// serveProfile returns the point total for the requesting cookie identity.
func serveProfile(cfg *Config, store *Store, errs chan<- error) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		playerID := getOrSetPlayerID(w, r)

		points, err := store.PlayerPoints(playerID)
		if err != nil {
			errs <- err
			http.Error(w, "database error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		securityHeaders(cfg, w)

		if err := json.NewEncoder(w).Encode(PlayerScore{
			PlayerID:    playerID,
			TotalPoints: points,
		}); err != nil {
			errs <- err
		}
	}
}

// serveMedia serves raw media files (quote-mode video clips). Images go
// through the proxy instead; this path never pixelates.
func serveMedia(cfg *Config, errs chan<- error) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		fullPath, err := mediaFilePath(cfg, strings.TrimPrefix(ps.ByName("filepath"), "/"))
		if err != nil {
			http.Error(w, "media not found", http.StatusNotFound)
			return
		}

		if _, err := os.Stat(fullPath); err != nil {
			http.Error(w, "media not found", http.StatusNotFound)
			return
		}

		securityHeaders(cfg, w)
		http.ServeFile(w, r, fullPath)
	}
}
