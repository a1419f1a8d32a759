package main

import "github.com/campusxp/experience-api/cmd/api/cmd"

func main() {
	cmd.Execute()
}
