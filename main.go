package main

import "github.com/dylanl321/AmcrestCameraConfigure-Frigate/cmd"

func main() {
	cmd.Execute()
}
