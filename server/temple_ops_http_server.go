package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
)

type TempleOpsHttpServer struct {
	router    *Router
	muxRouter *mux.Router
}

func NewTempleOpsHttpServer(router *Router, muxRouter *mux.Router) *TempleOpsHttpServer {
	return &TempleOpsHttpServer{
		router:    router,
		muxRouter: muxRouter,
	}
}

// Start registers the routes, serves until SIGINT/SIGTERM, then shuts down
// gracefully. The onShutdown hook runs before the listener closes so
// background loops stop first.
func (s *TempleOpsHttpServer) Start(onShutdown func()) {
	s.router.RegisterRoutes()

	srv := &http.Server{
		Addr:    ":8080",
		Handler: s.muxRouter,
	}

	// Channel to listen for interrupt or termination signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Start the server in a goroutine so it doesn't block
	go func() {
		fmt.Println("Starting server on :8080")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	// Wait for a signal to shut down
	<-stop
	fmt.Println("\nShutting down the server...")

	if onShutdown != nil {
		onShutdown()
	}

	// Create a deadline for the shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	fmt.Println("Server exiting")
}
