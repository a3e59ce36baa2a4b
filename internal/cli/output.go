package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mihara/courseflow/internal/model"
	"github.com/mihara/courseflow/internal/services/recommend"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case *model.User:
		o.printUser(v)
	case []*model.User:
		for i, u := range v {
			if i > 0 {
				fmt.Println()
			}
			o.printUser(u)
		}
	case recommend.Result:
		o.printRecommendation(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printUser(u *model.User) {
	fmt.Printf("User: %s (#%d)\n", u.Name, u.ID)
	fmt.Printf("Email: %s\n", u.Email)
	fmt.Printf("Birthday: %s\n", u.Birthday)
	if u.Course != "" {
		fmt.Printf("Course: %s\n", u.Course)
	} else {
		fmt.Println("Course: (none)")
	}
	fmt.Printf("Registered: %s\n", u.RegisterTime.Format("2006-01-02 15:04:05"))
}

func (o *Output) printRecommendation(r recommend.Result) {
	if r.Matched {
		fmt.Printf("Course: %s\n", r.Course)
	}
	fmt.Println(r.Text)
}
