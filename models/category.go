package models

// Category is one entry of a taxonomy: a label and the text used to describe it to the model
type Category struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// Taxonomy holds the two independent category lists
type Taxonomy struct {
	Projects  []Category `json:"project_categories"`
	TaskTypes []Category `json:"task_type_categories"`
}

// ValidProjects returns the accepted project labels, Un-categorized included
func (t Taxonomy) ValidProjects() map[string]bool {
	return nameSet(t.Projects)
}

// ValidTaskTypes returns the accepted task type labels, Un-categorized included
func (t Taxonomy) ValidTaskTypes() map[string]bool {
	return nameSet(t.TaskTypes)
}

func nameSet(categories []Category) map[string]bool {
	names := make(map[string]bool, len(categories)+1)
	for _, c := range categories {
		names[c.Name] = true
	}
	names[Uncategorized] = true
	return names
}
