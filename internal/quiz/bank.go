package quiz

import "learningplatform/internal/models"

// Question is a single multiple-choice question. Questions are static data
// compiled into the binary; nothing mutates them at runtime.
type Question struct {
	Prompt  string
	Options [4]string
	Correct int // index into Options
}

// courseBanks holds the fixed question bank for each course.
var courseBanks = map[models.Course][]Question{
	models.CoursePython: {
		{
			Prompt:  "What is the output of print(type(1/2)) in Python?",
			Options: [4]string{"<class 'int'>", "<class 'float'>", "<class 'number'>", "<class 'decimal'>"},
			Correct: 1,
		},
		{
			Prompt:  "Which of the following is NOT a Python data type?",
			Options: [4]string{"List", "Dictionary", "Array", "Tuple"},
			Correct: 2,
		},
		{
			Prompt:  "What does the 'self' keyword represent in a Python class?",
			Options: [4]string{"The class itself", "The instance of the class", "A static method", "A class method"},
			Correct: 1,
		},
		{
			Prompt:  "Which method is used to add an element to a list in Python?",
			Options: [4]string{"add()", "insert()", "append()", "push()"},
			Correct: 2,
		},
		{
			Prompt:  "What is the correct way to create a virtual environment in Python?",
			Options: [4]string{"python -m venv env", "python create venv", "python -v environment", "python setup venv"},
			Correct: 0,
		},
	},
	models.CourseDatabase: {
		{
			Prompt:  "What does SQL stand for?",
			Options: [4]string{"Structured Query Language", "Simple Query Language", "Standard Query Language", "System Query Language"},
			Correct: 0,
		},
		{
			Prompt:  "Which SQL command is used to insert new data into a database?",
			Options: [4]string{"ADD", "INSERT", "CREATE", "UPDATE"},
			Correct: 1,
		},
		{
			Prompt:  "What is a primary key in a database?",
			Options: [4]string{"A key that opens the database", "A unique identifier for each record", "The first column in a table", "A backup key"},
			Correct: 1,
		},
		{
			Prompt:  "Which of the following is NOT a type of database relationship?",
			Options: [4]string{"One-to-One", "One-to-Many", "Many-to-Many", "One-to-All"},
			Correct: 3,
		},
		{
			Prompt:  "What is normalization in database design?",
			Options: [4]string{"Making the database faster", "Organizing data to reduce redundancy", "Backing up the database", "Creating indexes"},
			Correct: 1,
		},
	},
	models.CourseWeb: {
		{
			Prompt:  "What does HTML stand for?",
			Options: [4]string{"Hyper Text Markup Language", "High Tech Modern Language", "Hyper Transfer Markup Language", "Hyper Text Modern Language"},
			Correct: 0,
		},
		{
			Prompt:  "Which CSS property is used to change the text color?",
			Options: [4]string{"text-color", "font-color", "color", "text-style"},
			Correct: 2,
		},
		{
			Prompt:  "What is the correct way to write a JavaScript array?",
			Options: [4]string{"var colors = (1:'red', 2:'green', 3:'blue')", "var colors = ['red', 'green', 'blue']", "var colors = 'red', 'green', 'blue'", "var colors = {1:'red', 2:'green', 3:'blue'}"},
			Correct: 1,
		},
		{
			Prompt:  "Which HTML tag is used to create a hyperlink?",
			Options: [4]string{"<link>", "<a>", "<href>", "<url>"},
			Correct: 1,
		},
		{
			Prompt:  "What is the purpose of the <meta> tag in HTML?",
			Options: [4]string{"To create a new page", "To add metadata about the document", "To create a table", "To add a style"},
			Correct: 1,
		},
	},
}

// Bank returns a copy of the question bank for a course, so callers can
// shuffle freely without touching the shared data.
func Bank(course models.Course) ([]Question, bool) {
	bank, ok := courseBanks[course]
	if !ok {
		return nil, false
	}
	out := make([]Question, len(bank))
	copy(out, bank)
	return out, true
}
