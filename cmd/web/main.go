package main

import "joblink_backend/internal/app"

func main() {
	app.Run()
}
