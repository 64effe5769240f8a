package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"sheetdrop/internal/config"
	"sheetdrop/internal/folders"
	"sheetdrop/internal/ingest"
	"sheetdrop/internal/models"
	"sheetdrop/internal/notify"
	"sheetdrop/internal/util"
)

// Ingestor is what the append endpoint needs from the ingest layer.
type Ingestor interface {
	Append(ctx context.Context, sub models.Submission, folderID string) (int, error)
}

func New(cfg config.Config, ing Ingestor, res folders.Resolver, notifier *notify.Notifier) *http.Server {
	r := mux.NewRouter()
	r.Use(enableCORS, requestLog)

	r.HandleFunc("/google-sheets/append-to-sheet", handleAppend(ing, res, notifier)).
		Methods("POST", "OPTIONS")

	return &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}
}

func handleAppend(ing Ingestor, res folders.Resolver, notifier *notify.Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var sub models.Submission
		if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
			writeResponse(w, http.StatusBadRequest, "invalid JSON body")
			return
		}

		if strings.TrimSpace(sub.Username) == "" {
			writeResponse(w, http.StatusBadRequest, "username is required")
			return
		}
		if strings.TrimSpace(sub.ImageType) == "" {
			writeResponse(w, http.StatusBadRequest, "imageType is required")
			return
		}
		if len(sub.ImageData) == 0 {
			writeResponse(w, http.StatusBadRequest, "imageData must be a non-empty array")
			return
		}

		folderID, err := res.Resolve(r.URL.Query().Get("folderType"), sub.FolderID)
		if err != nil {
			writeResponse(w, http.StatusBadRequest, err.Error())
			return
		}

		n, err := ing.Append(r.Context(), sub, folderID)
		if err != nil {
			log.Printf("append for %s/%s: %v", sub.Username, sub.ImageType, err)
			if errors.Is(err, ingest.ErrInvalid) {
				writeResponse(w, http.StatusBadRequest, "imageData records must be flat JSON objects")
				return
			}
			// Remote detail stays in the server log.
			writeResponse(w, http.StatusInternalServerError, "failed to append data to sheet")
			return
		}

		go func() {
			text := fmt.Sprintf("appended %d row(s) for %s into %q at %s",
				n, sub.Username, sub.ImageType, util.NowISO())
			if err := notifier.Send(text); err != nil {
				log.Printf("notify admin: %v", err)
			}
		}()

		writeResponse(w, http.StatusOK, "data appended successfully")
	}
}

func writeResponse(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(models.Response{
		StatusCode: status,
		Message:    message,
	})
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(sw, r)
		log.Printf("%s %s %s -> %d (%s)", id, r.Method, r.URL.Path, sw.status, time.Since(start))
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
