// internal/workers/infrastructure/build-response/templates.go
package buildresponse

// Built-in templates used when no registry file is configured.
// The career-report template requires at least one analysis section.
var defaultTemplates = []TemplateDefinition{
	{
		ID:   "career-report",
		Type: "career-report",
		Schema: map[string]interface{}{
			"type": "object",
			"anyOf": []interface{}{
				map[string]interface{}{"required": []interface{}{"assessment"}},
				map[string]interface{}{"required": []interface{}{"gapAnalysis"}},
				map[string]interface{}{"required": []interface{}{"progress"}},
			},
		},
		Template: map[string]interface{}{
			"assessment":  "{{assessment}}",
			"gapAnalysis": "{{gapAnalysis}}",
			"progress":    "{{progress}}",
		},
		Version: "1.0",
	},
	{
		ID:   "assessment-summary",
		Type: "career-report",
		Schema: map[string]interface{}{
			"type":     "object",
			"required": []interface{}{"assessment"},
		},
		Template: map[string]interface{}{
			"currentRole":     "{{assessment.currentRole}}",
			"experienceLevel": "{{assessment.experienceLevel}}",
			"confidence":      "{{assessment.confidence}}",
		},
		Version: "1.0",
	},
}
