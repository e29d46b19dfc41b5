package main

import (
	"os"

	"github.com/dinefind/dinefind/restaurantservice"
)

func main() {
	if err := restaurantservice.Run(); err != nil {
		os.Exit(1)
	}
}
