package server

import (
	"net/http"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	"github.com/bilabonnement/rental-service/internal/handlers"
)

func NewRouter(h *handlers.Handler, log *zap.Logger) *mux.Router {
	r := mux.NewRouter()
	r.Use(handlers.RequestLogger(log))

	r.HandleFunc("/", h.Home).Methods("GET")

	// Rental contract CRUD under "/rentals"
	rentals := r.PathPrefix("/rentals").Subrouter()
	rentals.HandleFunc("", h.CreateRental).Methods("POST")
	rentals.HandleFunc("/all", h.ListRentals).Methods("GET")
	rentals.HandleFunc("/{id:[0-9]+}", h.GetRental).Methods("GET")
	rentals.HandleFunc("/{id:[0-9]+}", h.UpdateRental).Methods("PATCH")
	rentals.HandleFunc("/{id:[0-9]+}", h.DeleteRental).Methods("DELETE")

	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Unknown endpoints and wrong verbs answer JSON like everything else.
	r.NotFoundHandler = jsonError(http.StatusNotFound, "Endpoint not found")
	r.MethodNotAllowedHandler = jsonError(http.StatusMethodNotAllowed, "Method not allowed")

	return r
}

func jsonError(status int, message string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(`{"error": "` + message + `"}`))
	})
}
