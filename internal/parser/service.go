package parser

import (
	"strings"

	"github.com/CentralLabFacilities/rosjava-bootstrap/internal/errors"
)

// SplitService divides a service definition at its separator line into the
// request and response halves. Either half may be empty. Text without a
// separator is all request.
func SplitService(text string) (request, response string, err error) {
	lines := strings.SplitAfter(text, "\n")

	separator := -1
	for i, line := range lines {
		if strings.TrimSpace(line) != ServiceSeparator {
			continue
		}
		if separator >= 0 {
			return "", "", errors.NewMalformedDefinitionError(i+1, ServiceSeparator,
				"service definition has more than one separator")
		}
		separator = i
	}

	if separator < 0 {
		return text, "", nil
	}

	request = strings.Join(lines[:separator], "")
	response = strings.Join(lines[separator+1:], "")
	return request, response, nil
}
