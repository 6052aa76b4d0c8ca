package naming

import (
	"slices"
	"strings"
)

// Task is a pipeline stage that may appear as the task segment of a filename.
type Task struct {
	Name  string
	Label string
}

var assetTasks = []Task{
	{Name: "model", Label: "Modeling"},
	{Name: "rig", Label: "Rigging"},
	{Name: "texture", Label: "Texturing"},
	{Name: "shader", Label: "Shading"},
	{Name: "setup", Label: "Setup"},
}

var shotTasks = []Task{
	{Name: "layout", Label: "Layout"},
	{Name: "anim", Label: "Animation"},
	{Name: "lighting", Label: "Lighting"},
	{Name: "comp", Label: "Compositing"},
	{Name: "fx", Label: "Effects"},
}

// forbiddenAssetTasks are shot stages that must never name an asset file.
// "fx" is deliberately absent: it is only unknown for assets, not reserved.
var forbiddenAssetTasks = []string{"layout", "anim", "lighting", "comp"}

// AssetTasks returns the asset task vocabulary in pipeline order.
func AssetTasks() []Task {
	return slices.Clone(assetTasks)
}

// ShotTasks returns the shot task vocabulary in pipeline order.
func ShotTasks() []Task {
	return slices.Clone(shotTasks)
}

// IsAssetTask reports whether task belongs to the asset vocabulary.
func IsAssetTask(task string) bool {
	return slices.ContainsFunc(assetTasks, func(t Task) bool { return t.Name == task })
}

// IsShotTask reports whether task belongs to the shot vocabulary.
func IsShotTask(task string) bool {
	return slices.ContainsFunc(shotTasks, func(t Task) bool { return t.Name == task })
}

// IsForbiddenAssetTask reports whether task is reserved for shot files.
func IsForbiddenAssetTask(task string) bool {
	return slices.Contains(forbiddenAssetTasks, task)
}

func taskNames(tasks []Task) string {
	names := make([]string, len(tasks))
	for i, t := range tasks {
		names[i] = t.Name
	}
	return strings.Join(names, ", ")
}
