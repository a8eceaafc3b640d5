package api

import (
	"log"
	"voicebridge/internal/repository"
)

// callRepo is the shared call repository instance, nil without a database
var callRepo repository.CallRepository

// InitCallRepository initializes the call repository
func InitCallRepository(repo repository.CallRepository) {
	callRepo = repo
	if repo != nil {
		log.Printf("Call repository initialized successfully")
	} else {
		log.Printf("Warning: call repository is nil")
	}
}
