package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/linguabridge/backend/internal/gateway"
	"github.com/linguabridge/backend/internal/levels"
	"github.com/linguabridge/backend/internal/placement"
	"github.com/linguabridge/backend/internal/writing"
)

func main() {
	var client gateway.Client
	if os.Getenv("MOCK_GATEWAY") == "true" {
		client = gateway.NewCannedClient()
		log.Println("Gateway using mock responses")
	} else {
		client = gateway.New(gateway.DefaultRegistry())
	}

	levelStore := levels.NewStore()

	writingService := writing.NewService(client, levelStore)
	writingHandler := writing.NewHandler(writingService)

	sessions := placement.NewSessionStore()
	engine := placement.NewEngine(writingService, client, sessions)
	placementHandler := placement.NewHandler(engine)

	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/placement/task", placementHandler.CreateTask).Methods("POST")
	api.HandleFunc("/placement/evaluate", placementHandler.EvaluateTest).Methods("POST")

	api.HandleFunc("/writing/multiplechoice", writingHandler.MultipleChoice).Methods("POST")
	api.HandleFunc("/writing/blank", writingHandler.FillInBlank).Methods("POST")
	api.HandleFunc("/writing/explainanswer", writingHandler.ExplainAnswer).Methods("POST")

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
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
