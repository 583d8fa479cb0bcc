// Command server runs the moodtrack HTTP API.
package main

import (
	"context"
	"log"

	"github.com/calmbird/moodtrack-backend/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
