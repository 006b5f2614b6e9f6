package main

import (
	"log"

	"learningplatform/internal/quizui"
)

func main() {
	if err := quizui.Execute(); err != nil {
		log.Fatal(err)
	}
}
