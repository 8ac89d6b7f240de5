package main

import "cms_backend/internal/app"

func main() {
	app.Run()
}
