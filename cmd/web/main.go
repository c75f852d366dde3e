package main

import "logistik_backend/internal/app"

func main() {
	app.Run()
}
