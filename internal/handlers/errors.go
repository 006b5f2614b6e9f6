package handlers

import (
	"log"
	"net/http"
)

// respondWithError writes a plain-text error response. The user sees only
// userMsg; err and the optional logMsg stay in the server log so internals
// never leak into a page.
func respondWithError(w http.ResponseWriter, status int, userMsg, logMsg string, err error) {
	if err != nil {
		if logMsg == "" {
			logMsg = userMsg
		}
		log.Printf("%s (status %d): %v", logMsg, status, err)
	}

	http.Error(w, userMsg, status)
}
