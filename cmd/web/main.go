package main

import "github.com/servetisikli/takstore-backend/internal/app"

func main() {
	app.Run()
}
