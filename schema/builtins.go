package schema

import "embed"

// Schema assets are embedded at compile time. A read failure below means
// the binary is misconfigured and should fail fast.
//
//go:embed cue/*.cue
var builtinFS embed.FS

// builtins is the compiled-in catalog, assembled once at package
// initialization and immutable for the process lifetime. Adding or removing
// a built-in is a change to this table only; no registry operation
// special-cases an individual identifier.
var builtins = buildCatalog()

type builtinEntry struct {
	id          string
	file        string
	name        string
	description string
	tags        []string
}

func buildCatalog() []Definition {
	entries := []builtinEntry{
		{
			id:          "rsr:pipeline",
			file:        "pipeline.cue",
			name:        "RSR Pipeline Schema",
			description: "Schema for .conflow.yaml pipeline definitions",
			tags:        []string{"conflow", "pipeline"},
		},
		{
			id:          "rsr:requirement",
			file:        "requirement.cue",
			name:        "RSR Requirement Schema",
			description: "Schema for RSR requirement definitions",
			tags:        []string{"rsr", "requirement"},
		},
		{
			id:          "rsr:config",
			file:        "config.cue",
			name:        "RSR Configuration Schema",
			description: "Schema for .rsr.yaml configuration files",
			tags:        []string{"rsr", "config"},
		},
		{
			id:          "k8s:base",
			file:        "k8s_base.cue",
			name:        "Kubernetes Base Schema",
			description: "Base schema for Kubernetes resources",
			tags:        []string{"kubernetes", "k8s"},
		},
		{
			id:          "terraform:variables",
			file:        "terraform_variables.cue",
			name:        "Terraform Variables Schema",
			description: "Schema for Terraform variable definitions",
			tags:        []string{"terraform", "iac"},
		},
		{
			id:          "helm:values",
			file:        "helm_values.cue",
			name:        "Helm Values Schema",
			description: "Schema for Helm chart values.yaml files",
			tags:        []string{"helm", "kubernetes"},
		},
		{
			id:          "docker:compose",
			file:        "docker_compose.cue",
			name:        "Docker Compose Schema",
			description: "Schema for docker-compose.yaml files",
			tags:        []string{"docker", "compose"},
		},
		{
			id:          "github:actions",
			file:        "github_actions.cue",
			name:        "GitHub Actions Schema",
			description: "Schema for GitHub Actions workflow files",
			tags:        []string{"github", "ci"},
		},
		{
			id:          "aws:cloudformation",
			file:        "cloudformation.cue",
			name:        "AWS CloudFormation Schema",
			description: "Schema for CloudFormation templates",
			tags:        []string{"aws", "cloudformation", "iac"},
		},
	}

	defs := make([]Definition, 0, len(entries))
	for _, e := range entries {
		content, err := builtinFS.ReadFile("cue/" + e.file)
		if err != nil {
			panic("schema: missing embedded asset " + e.file + ": " + err.Error())
		}
		defs = append(defs, Definition{
			ID:          e.id,
			Kind:        KindCUE,
			Name:        e.name,
			Description: e.description,
			Source:      InlineSource{Content: string(content)},
			Version:     "1.0.0",
			Tags:        e.tags,
		})
	}
	return defs
}
