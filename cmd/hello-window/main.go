// Command hello-window opens a window and clears it to red every frame.
package main

import "github.com/Faultbox/learngl/internal/tutorial"

type emptyScene struct{}

func (emptyScene) Draw(tutorial.Frame) error { return nil }
func (emptyScene) Close()                    {}

func main() {
	tutorial.Main(tutorial.Options{
		Title:      "Hello Window",
		ClearColor: [4]float32{1, 0, 0, 0},
	}, func(*tutorial.Context) (tutorial.Scene, error) {
		return emptyScene{}, nil
	})
}
