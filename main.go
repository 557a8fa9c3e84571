package main

import "github.com/LauschaNN/calorie-protein-tracker/cmd/tracker"

func main() {
	tracker.Execute()
}
