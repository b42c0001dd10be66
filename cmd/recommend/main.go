package main

import "vehicle-recommender/internal/cli"

func main() {
	cli.Execute()
}
