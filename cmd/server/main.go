// cmd/server/main.go
package main

import (
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/stitchlink/stitchlink-backend/internal/auth"
	"github.com/stitchlink/stitchlink-backend/internal/controller"
	"github.com/stitchlink/stitchlink-backend/internal/db"
	"github.com/stitchlink/stitchlink-backend/internal/handler"
	"github.com/stitchlink/stitchlink-backend/internal/repository"
	"github.com/stitchlink/stitchlink-backend/internal/service"
	"github.com/stitchlink/stitchlink-backend/internal/store"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, relying on OS environment variables")
	}

	var repo repository.CustomerRepositoryInterface
	switch os.Getenv("STORAGE_DRIVER") {
	case "local":
		path := os.Getenv("LOCAL_STORE_PATH")
		if path == "" {
			path = "stitchlink-store.json"
		}
		s, err := store.Open(path)
		if err != nil {
			log.Fatalf("failed to open local store: %v", err)
		}
		log.Println("💾 Using local store at", s.Path())
		repo = s
	default:
		conn, err := db.Connect()
		if err != nil {
			log.Fatalf("%v", err)
		}
		repo = &repository.CustomerRepository{DB: conn}
	}

	authURL := os.Getenv("AUTH_URL")
	if authURL == "" {
		log.Fatal("AUTH_URL is required")
	}
	loginURL := authURL + "/login"
	verifier := auth.NewRemoteVerifier(authURL)

	customerService := &service.CustomerService{Repo: repo}

	customerController := &controller.CustomerController{Service: customerService}
	orderController := &controller.OrderController{Service: customerService}
	sessionHandler := &handler.SessionHandler{Verifier: verifier, LoginURL: loginURL}

	r := chi.NewRouter()

	// Everything that touches customer data sits behind the session gate.
	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware(verifier, loginURL))

		r.Get("/auth/me", sessionHandler.Me)

		r.Post("/api/customers", customerController.CreateCustomer)
		r.Get("/api/customers", customerController.ListCustomers)
		r.Get("/api/customers/{id}", customerController.GetCustomer)
		r.Post("/api/customers/{id}/measurements", customerController.AddMeasurement)
		r.Put("/api/customers/{id}/measurements/{measurementId}", customerController.UpdateMeasurement)
		r.Get("/api/orders", orderController.ListOrders)
	})

	r.Post("/auth/signout", sessionHandler.SignOut)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Println("🚀 Server running on :" + port)
	log.Fatal(http.ListenAndServe(":"+port, r))
}
