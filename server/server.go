package server

import (
	"crypto/sha256"
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/ducksouplab/ridgeplot/env"
	"github.com/ducksouplab/ridgeplot/helpers"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

func basicAuthWith(refLogin, refPassword string) mux.MiddlewareFunc {
	// source https://www.alexedwards.net/blog/basic-authentication-in-go
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			login, password, ok := r.BasicAuth()
			if ok {
				// Calculate SHA-256 hashes for the provided and expected usernames and passwords.
				loginHash := sha256.Sum256([]byte(login))
				passwordHash := sha256.Sum256([]byte(password))
				expectedLoginHash := sha256.Sum256([]byte(refLogin))
				expectedPasswordHash := sha256.Sum256([]byte(refPassword))

				loginMatch := (subtle.ConstantTimeCompare(loginHash[:], expectedLoginHash[:]) == 1)
				passwordMatch := (subtle.ConstantTimeCompare(passwordHash[:], expectedPasswordHash[:]) == 1)

				if loginMatch && passwordMatch {
					next.ServeHTTP(w, r)
					return
				}
			}

			w.Header().Set("WWW-Authenticate", `Basic realm="restricted", charset="UTF-8"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
		})
	}
}

// allowOrigins answers cross-origin requests coming from the allowed list
func allowOrigins(origins []string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin != "" && helpers.Contains(origins, origin) {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
				w.Header().Set("Vary", "Origin")
			}
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// API

// NewRouter mounts the API under prefix, behind basic auth when login is not empty
func NewRouter(prefix, login, password string) *mux.Router {
	router := mux.NewRouter()
	router.Use(allowOrigins(env.AllowedOrigins))

	api := router
	if prefix != "" {
		api = router.PathPrefix(prefix).Subrouter()
	}
	if login != "" {
		api.Use(basicAuthWith(login, password))
	}
	api.HandleFunc("/palettes", palettesHandler).Methods(http.MethodGet)
	api.HandleFunc("/colormaps", colorMapsHandler).Methods(http.MethodGet)
	api.HandleFunc("/encode", encodeHandler).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/ridgeline", ridgelineHandler).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/heatmap", heatmapHandler).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/plots/{id}", figureHandler).Methods(http.MethodGet)
	return router
}

func ListenAndServe(cert, key string) error {
	server := &http.Server{
		Handler:      NewRouter(env.WebPrefix, env.Login, env.Password),
		Addr:         ":" + env.Port,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	// start HTTP server
	if key != "" && cert != "" {
		log.Info().Str("context", "init").Str("port", env.Port).Msg("https_server_started")
		return server.ListenAndServeTLS(cert, key) // blocking
	}
	log.Info().Str("context", "init").Str("port", env.Port).Msg("http_server_started")
	return server.ListenAndServe() // blocking
}
