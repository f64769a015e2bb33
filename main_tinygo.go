//go:build tinygo

package main

import (
	"github.com/haoyibits/Motor-Monitor/app"
	"github.com/haoyibits/Motor-Monitor/hal"
)

func main() {
	app.Run(hal.New())
}
