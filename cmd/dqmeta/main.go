package main

import "github.com/Egor213/DQMeta/internal/app"

func main() {
	app.Run()
}
