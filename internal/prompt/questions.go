/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package prompt

// Questions asked for omitted CLI values.
var (
	InputPath = Question{
		Heading: "Please enter the path to the token JSON file:",
		Label:   "Input path:",
		Default: "./tokens.json",
	}

	OutputDir = Question{
		Heading: "Please enter the path to the CSS output directory:",
		Label:   "Output path:",
		Default: "./theme",
	}

	CreateText = Question{
		Heading: "Include a React-based Text component?",
		Hint:    "This adds a pre-built component for applying typographic styles via props, EG: ",
		Example: `<Text variant="header-1" />`,
		Label:   "Add Text component:",
	}

	ComponentDir = Question{
		Heading: "Please enter the path to the component output directory:",
		Label:   "Output path:",
		Default: "./components/",
	}

	DocumentID = Question{
		Heading: "Enter the ID of the document to generate a theme for.",
		Hint:    "This can be retrieved from the URL of the document in Figma, EG: ",
		Example: "https://www.figma.com/:file_type/:file_ID/:file_name",
		Label:   "Document ID:",
	}
)
