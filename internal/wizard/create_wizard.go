package wizard

// CreateInput is the outcome of the interactive create wizard.
type CreateInput struct {
	ProjectName string
	Services    []string // overlay ids to apply right after creation
}

// CreateWizard collects the inputs for a new project interactively.
type CreateWizard struct {
	prompter Prompter
	services []string // selectable overlay ids, in display order
}

// NewCreateWizard builds a create wizard. A nil prompter uses survey.
func NewCreateWizard(p Prompter, services []string) *CreateWizard {
	if p == nil {
		p = NewSurveyPrompter()
	}
	return &CreateWizard{prompter: p, services: services}
}

// Run prompts for the project name and optional service overlays.
func (w *CreateWizard) Run() (*CreateInput, error) {
	name, err := w.prompter.Input("Project name:", "myapp", ValidateProjectName)
	if err != nil {
		return nil, err
	}

	input := &CreateInput{ProjectName: name}

	if len(w.services) == 0 {
		return input, nil
	}

	addServices, err := w.prompter.Confirm("Add optional services now?", false)
	if err != nil {
		return nil, err
	}
	if !addServices {
		return input, nil
	}

	selected, err := w.prompter.MultiSelect("Services to add:", w.services, nil)
	if err != nil {
		return nil, err
	}
	input.Services = selected
	return input, nil
}
