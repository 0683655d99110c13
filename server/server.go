package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/calbec/medialog/pkg/manager"
	"github.com/calbec/medialog/pkg/media"
)

type GenericResponse struct {
	Error    *string `json:"error,omitempty"`
	Response any     `json:"response"`
}

// routes maps the url collection segment to its media type
var collectionRoutes = map[string]media.Type{
	"books":  media.TypeBook,
	"movies": media.TypeMovie,
	"shows":  media.TypeShow,
	"games":  media.TypeGame,
}

// Server houses all dependencies for the media server to work such as loggers, the manager, configurations, etc.
type Server struct {
	baseLogger *zap.SugaredLogger
	manager    *manager.MediaManager
}

// New creates a new media server
func New(logger *zap.SugaredLogger, manager *manager.MediaManager) Server {
	return Server{
		baseLogger: logger,
		manager:    manager,
	}
}

func writeErrorResponse(w http.ResponseWriter, status int, err error) error {
	message := err.Error()
	return writeResponse(w, status, GenericResponse{
		Error: &message,
	})
}

func writeResponse(w http.ResponseWriter, status int, body any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}

	w.Header().Set("content-type", "application/json")
	if status != http.StatusOK {
		w.WriteHeader(status)
	}

	w.Write(b)
	return nil
}

// Handler builds the full route tree. Split from Serve so tests can mount it
// on httptest servers.
func (s Server) Handler() http.Handler {
	rtr := mux.NewRouter()
	rtr.Use(s.LogMiddleware())
	rtr.HandleFunc("/healthz", s.Healthz()).Methods(http.MethodGet)

	api := rtr.PathPrefix("/api").Subrouter()

	v1 := api.PathPrefix("/v1").Subrouter()

	for segment, typ := range collectionRoutes {
		prefix := "/" + segment
		v1.HandleFunc(prefix, s.ListMedia(typ)).Methods(http.MethodGet)
		v1.HandleFunc(prefix, s.CreateMedia(typ)).Methods(http.MethodPost)
		v1.HandleFunc(prefix+"/{id:[0-9]+}", s.GetMedia(typ)).Methods(http.MethodGet)
		v1.HandleFunc(prefix+"/{id:[0-9]+}", s.PatchMedia(typ)).Methods(http.MethodPatch)
		v1.HandleFunc(prefix+"/{id:[0-9]+}", s.DeleteMedia(typ)).Methods(http.MethodDelete)
		v1.HandleFunc("/search"+prefix, s.SearchMedia(typ)).Methods(http.MethodGet)
	}

	v1.HandleFunc("/shows/{id:[0-9]+}/progress", s.ShowProgress()).Methods(http.MethodGet)

	return handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete}),
	)(rtr)
}

// Serve starts the http server and is a blocking call
func (s Server) Serve(port int) error {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: s.Handler(),
	}

	go func() {
		s.baseLogger.Info("serving...", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil {
			s.baseLogger.Error(err.Error())
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	<-c

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()

	return srv.Shutdown(ctx)
}

// Healthz is an endpoint that can be used for probes
func (s Server) Healthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := GenericResponse{
			Response: "ok",
		}
		writeResponse(w, http.StatusOK, response)
	}
}
