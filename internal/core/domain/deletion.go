package domain

// DeleteOperationResult is the outcome of deleting a single path.
type DeleteOperationResult struct {
	Path         string
	Success      bool
	ErrorMessage string
}

// DeleteOperationSelection groups the deletion outcomes for one match.
type DeleteOperationSelection struct {
	Name      string
	Directory string
	Results   []DeleteOperationResult
}

// Failed returns the outcomes that did not succeed.
func (s DeleteOperationSelection) Failed() []DeleteOperationResult {
	var failed []DeleteOperationResult
	for _, r := range s.Results {
		if !r.Success {
			failed = append(failed, r)
		}
	}
	return failed
}

// CountOutcomes returns the number of succeeded and failed paths across selections.
func CountOutcomes(selections []DeleteOperationSelection) (succeeded, failed int) {
	for _, s := range selections {
		for _, r := range s.Results {
			if r.Success {
				succeeded++
			} else {
				failed++
			}
		}
	}
	return succeeded, failed
}
