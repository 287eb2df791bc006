package main

import (
	"github.com/bugielektrik/sqlrepo/app"
)

func main() {
	app.Run()
}
