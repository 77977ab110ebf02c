package main

import "github.com/Shekhar0165/shekhar-portfolio/internal/app"

func main() {
	app.Run()
}
