package config

import "go.trai.ch/wsg/internal/core/domain"

// Builtins returns the recognizers shipped with wsg, in matching order.
func Builtins() []domain.Recognizer {
	return []domain.Recognizer{
		{
			Name:      "Flutter",
			Presence:  []domain.PathSignature{domain.File("pubspec.yaml")},
			Deletable: []domain.PathSignature{domain.Dir("build")},
		},
		{
			Name:      "NodeJS",
			Presence:  []domain.PathSignature{domain.File("package.json")},
			Deletable: []domain.PathSignature{domain.Dir("node_modules")},
		},
		{
			Name:      "Rust",
			Presence:  []domain.PathSignature{domain.File("Cargo.toml")},
			Deletable: []domain.PathSignature{domain.Dir("target")},
		},
		{
			Name:      "Gradle",
			Presence:  []domain.PathSignature{domain.File("build.gradle"), domain.File("build.gradle.kts")},
			Deletable: []domain.PathSignature{domain.Dir("build")},
		},
		{
			Name:      "Maven",
			Presence:  []domain.PathSignature{domain.File("pom.xml")},
			Deletable: []domain.PathSignature{domain.Dir("target")},
		},
		{
			Name:      "Python",
			Presence:  []domain.PathSignature{domain.File("pyproject.toml"), domain.File("requirements.txt")},
			Deletable: []domain.PathSignature{domain.Dir(".venv")},
		},
		{
			Name:      "DotNet",
			Presence:  []domain.PathSignature{domain.File("Directory.Build.props")},
			Deletable: []domain.PathSignature{domain.Dir("bin")},
		},
		{
			Name:      "Elixir",
			Presence:  []domain.PathSignature{domain.File("mix.exs")},
			Deletable: []domain.PathSignature{domain.Dir("_build")},
		},
		{
			Name:      "Stack",
			Presence:  []domain.PathSignature{domain.File("stack.yaml")},
			Deletable: []domain.PathSignature{domain.Dir(".stack-work")},
		},
		{
			Name:      "Zig",
			Presence:  []domain.PathSignature{domain.File("build.zig")},
			Deletable: []domain.PathSignature{domain.Dir("zig-cache")},
		},
	}
}
