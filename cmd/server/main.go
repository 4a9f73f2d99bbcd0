package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/cube823/instinct-test/internal/database"
	"github.com/cube823/instinct-test/internal/middleware"
	"github.com/cube823/instinct-test/internal/quiz"
	"github.com/cube823/instinct-test/internal/results"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	// Initialize database
	db, err := database.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize handlers
	store := results.NewPostgresStore(db)
	service := results.NewService(store)
	resultHandler := results.NewHandler(service)

	// Setup router
	r := mux.NewRouter()
	r.Use(middleware.Logging)
	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/questions", quiz.HandleQuestions).Methods("GET")
	api.HandleFunc("/results", resultHandler.SubmitResult).Methods("POST")
	api.HandleFunc("/results/{id}", resultHandler.GetResult).Methods("GET")
	api.HandleFunc("/stats", resultHandler.GetStats).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	})

	handler := c.Handler(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on :%s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
