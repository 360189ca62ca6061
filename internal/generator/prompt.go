package generator

import (
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// ExerciseCount is how many exercises a list is generated with.
const ExerciseCount = 5

// BuildPrompt renders the instruction sent to the model. The output depends
// only on its arguments.
func BuildPrompt(bodyPart string, equipmentNames []string) string {
	var sb strings.Builder
	sb.WriteString("You are a professional fitness trainer.\n")
	fmt.Fprintf(&sb, "Create a list of %d exercises to train the \"%s\" body part using the \"%s\" equipment.\n",
		ExerciseCount, bodyPart, strings.Join(equipmentNames, ", "))
	sb.WriteString(`For each exercise, provide the following information in a strict JSON format:
1. "name": Name of the exercise (String).
2. "steps": Detailed steps to perform the exercise, use numbering bullet and each step separated by a newline (String).
3. "sets": Recommended number of sets (Integer).
4. "repetitions": Number of repetitions per set (Integer).
5. "youtubeUrl": Youtube query URL for a video reference corresponding to the exercise name (String).

`)
	fmt.Fprintf(&sb, "Ensure the output is a valid JSON array containing %d exercise objects. ", ExerciseCount)
	sb.WriteString(`Do not include any other text outside of this JSON array.
Example of one exercise object in the array:
{
    "name": "",
    "steps": "",
    "sets": integer,
    "repetitions": integer,
    "youtubeUrl": ""
}`)
	return sb.String()
}

var exerciseFields = []string{"name", "steps", "sets", "repetitions", "youtubeUrl"}

// ResponseSchema is the structured-output contract handed to the model:
// an array of objects with five required fields.
func ResponseSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"name":        {Type: genai.TypeString},
				"steps":       {Type: genai.TypeString},
				"sets":        {Type: genai.TypeInteger},
				"repetitions": {Type: genai.TypeInteger},
				"youtubeUrl":  {Type: genai.TypeString},
			},
			Required:         exerciseFields,
			PropertyOrdering: exerciseFields,
		},
	}
}
