package ai

import "fmt"

// ComposePrompt describes the poster the external generator should paint
func ComposePrompt(animalA, animalB, speciesName string) string {
	return fmt.Sprintf("Create a bright, imaginative poster illustration of a fictional animal that "+
		"combines a %s and a %s. Focus on a friendly, whimsical style with "+
		"bold colors, studio lighting, and a simple background. Include a small caption of "+
		"the name '%s' in the lower area.", animalA, animalB, speciesName)
}
