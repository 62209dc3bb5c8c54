package main

import "github.com/ZacxDev/go-static-sitemap/cmd"

func main() {
	cmd.Execute()
}
