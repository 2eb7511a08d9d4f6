package main

import (
	"github.com/guevarapcharly-commits/pelis-avod/internal/app"
	"github.com/guevarapcharly-commits/pelis-avod/internal/config"
)

func main() {
	app.Go(config.Load())
}
