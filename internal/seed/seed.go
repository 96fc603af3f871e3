// Package seed populates an empty database with the starter catalog:
// courses, marketplace books, contests and their question banks.
// Each table is seeded only when it is empty, so restarting the server
// never duplicates rows.
package seed

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/nikhitamarali-prog/AI-based-skill-development-platform/internal/model"
)

const (
	placeholderNotes = "https://www.w3.org/WAI/ER/tests/xhtml/testfiles/resources/pdf/dummy.pdf"
	placeholderVideo = "https://www.youtube.com/embed/dQw4w9WgXcQ"
)

// Run seeds all starter data. Safe to call on every startup.
func Run(db *gorm.DB, logger *zap.Logger) error {
	if err := seedCourses(db, logger); err != nil {
		return err
	}
	if err := seedBooks(db, logger); err != nil {
		return err
	}
	if err := seedContests(db, logger); err != nil {
		return err
	}
	return seedQuestions(db, logger)
}

func seedCourses(db *gorm.DB, logger *zap.Logger) error {
	var count int64
	if err := db.Model(&model.Course{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	courses := []model.Course{
		// CSE
		{Title: "Data Structures & Algorithms", Description: "Master arrays, linked lists, trees, and graphs.", Department: "CSE", Instructor: "Prof. Alan", Image: "https://picsum.photos/seed/dsa/400/250", NotesURL: placeholderNotes, VideoURL: "https://www.youtube.com/embed/8hly31xKli0"},
		{Title: "Java Programming", Description: "Learn core Java and object-oriented principles.", Department: "CSE", Instructor: "Dr. Smith", Image: "https://picsum.photos/seed/java/400/250", NotesURL: placeholderNotes, VideoURL: "https://www.youtube.com/embed/eIrMb6n6n8E"},
		{Title: "Database Management Systems", Description: "SQL, normalization, and database design.", Department: "CSE", Instructor: "Prof. Sarah", Image: "https://picsum.photos/seed/dbms/400/250", NotesURL: placeholderNotes, VideoURL: "https://www.youtube.com/embed/HXV3zeQKqGY"},
		{Title: "Object Oriented Programming", Description: "Classes, inheritance, and polymorphism.", Department: "CSE", Instructor: "Dr. Robert", Image: "https://picsum.photos/seed/oops/400/250", NotesURL: placeholderNotes, VideoURL: "https://www.youtube.com/embed/pTB0EiLXUC8"},
		{Title: "Operating Systems", Description: "Process management, memory, and file systems.", Department: "CSE", Instructor: "Prof. Kim", Image: "https://picsum.photos/seed/os/400/250", NotesURL: placeholderNotes, VideoURL: "https://www.youtube.com/embed/vBURTt97EkA"},
		// ECE
		{Title: "Digital Logic Design", Description: "Boolean algebra, gates, and flip-flops.", Department: "ECE", Instructor: "Prof. Jane", Image: "https://picsum.photos/seed/logic/400/250", NotesURL: placeholderNotes, VideoURL: "https://www.youtube.com/embed/CeD2L6KbtVM"},
		{Title: "VLSI Design", Description: "CMOS technology and chip fabrication.", Department: "ECE", Instructor: "Dr. Robert", Image: "https://picsum.photos/seed/vlsi/400/250", NotesURL: placeholderNotes, VideoURL: "https://www.youtube.com/embed/9SnR3M3C34I"},
		{Title: "Microprocessors", Description: "Architecture and assembly language.", Department: "ECE", Instructor: "Prof. Kim", Image: "https://picsum.photos/seed/micro/400/250", NotesURL: placeholderNotes, VideoURL: "https://www.youtube.com/embed/CeD2L6KbtVM"},
		{Title: "Signals & Systems", Description: "Fourier transforms and signal analysis.", Department: "ECE", Instructor: "Eng. Dave", Image: "https://picsum.photos/seed/signals/400/250", NotesURL: placeholderNotes, VideoURL: "https://www.youtube.com/embed/CeD2L6KbtVM"},
		// MBA
		{Title: "Business Analytics", Description: "Data-driven decision making.", Department: "MBA", Instructor: "Dr. Miller", Image: "https://picsum.photos/seed/analytics/400/250", NotesURL: placeholderNotes, VideoURL: placeholderVideo},
		{Title: "Financial Management", Description: "Corporate finance and investment.", Department: "MBA", Instructor: "Prof. Alice", Image: "https://picsum.photos/seed/finance/400/250", NotesURL: placeholderNotes, VideoURL: placeholderVideo},
		{Title: "Marketing Strategy", Description: "Brand building and market research.", Department: "MBA", Instructor: "Dr. Wilson", Image: "https://picsum.photos/seed/marketing/400/250", NotesURL: placeholderNotes, VideoURL: placeholderVideo},
		// Mechanical
		{Title: "Thermodynamics", Description: "Energy, heat, and work principles.", Department: "Mechanical", Instructor: "Eng. Brown", Image: "https://picsum.photos/seed/mech/400/250", NotesURL: placeholderNotes, VideoURL: placeholderVideo},
		{Title: "Manufacturing Process", Description: "Casting, welding, and machining.", Department: "Mechanical", Instructor: "Dr. White", Image: "https://picsum.photos/seed/cad/400/250", NotesURL: placeholderNotes, VideoURL: placeholderVideo},
		{Title: "Machine Design", Description: "Design of mechanical components.", Department: "Mechanical", Instructor: "Prof. Stark", Image: "https://picsum.photos/seed/robotics/400/250", NotesURL: placeholderNotes, VideoURL: placeholderVideo},
		// Civil
		{Title: "Structural Engineering", Description: "Analysis of beams, columns, and frames.", Department: "Civil", Instructor: "Dr. Lee", Image: "https://picsum.photos/seed/civil/400/250", NotesURL: placeholderNotes, VideoURL: placeholderVideo},
		{Title: "Surveying", Description: "Measurement and mapping of land.", Department: "Civil", Instructor: "Eng. Stone", Image: "https://picsum.photos/seed/survey/400/250", NotesURL: placeholderNotes, VideoURL: placeholderVideo},
		{Title: "Hydraulics", Description: "Fluid flow in pipes and channels.", Department: "Civil", Instructor: "Prof. Green", Image: "https://picsum.photos/seed/water/400/250", NotesURL: placeholderNotes, VideoURL: placeholderVideo},
	}

	if err := db.Create(&courses).Error; err != nil {
		return err
	}
	logger.Info("seeded courses", zap.Int("count", len(courses)))
	return nil
}

func seedBooks(db *gorm.DB, logger *zap.Logger) error {
	var count int64
	if err := db.Model(&model.Book{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	books := []model.Book{
		{Title: "Cracking the Coding Interview", Price: 450, SellerID: 1, Department: "CSE", Image: "https://picsum.photos/seed/ctci/300/400", Location: "Library", Stock: 5},
		// Out of stock on purpose: exercises the sold-out path.
		{Title: "Introduction to Algorithms", Price: 800, SellerID: 1, Department: "CSE", Image: "https://picsum.photos/seed/clrs/300/400", Location: "Block A", Stock: 0},
		{Title: "Principles of Management", Price: 300, SellerID: 2, Department: "MBA", Image: "https://picsum.photos/seed/mgmt/300/400", Location: "MBA Block", Stock: 2},
		{Title: "Structural Analysis", Price: 550, SellerID: 2, Department: "Civil", Image: "https://picsum.photos/seed/struct/300/400", Location: "Civil Dept", Stock: 1},
	}

	if err := db.Create(&books).Error; err != nil {
		return err
	}
	logger.Info("seeded books", zap.Int("count", len(books)))
	return nil
}

func seedContests(db *gorm.DB, logger *zap.Logger) error {
	var count int64
	if err := db.Model(&model.Contest{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	contests := []model.Contest{
		{Title: "Weekly Aptitude Challenge #1", Date: "2026-03-05", Description: "Test your logical reasoning and quantitative skills."},
		{Title: "Bi-Weekly Coding Sprint", Date: "2026-03-12", Description: "Solve 5 algorithmic problems in 2 hours."},
	}

	if err := db.Create(&contests).Error; err != nil {
		return err
	}
	logger.Info("seeded contests", zap.Int("count", len(contests)))
	return nil
}

func seedQuestions(db *gorm.DB, logger *zap.Logger) error {
	var count int64
	if err := db.Model(&model.Question{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	questions := []model.Question{
		// Contest 1: aptitude
		{ContestID: 1, Question: "What is the next number in the sequence: 2, 6, 12, 20, 30, ...?", Options: model.StringList{"36", "40", "42", "48"}, CorrectOption: 2},
		{ContestID: 1, Question: "If a train travels 60 km in 45 minutes, what is its speed in km/h?", Options: model.StringList{"75", "80", "90", "100"}, CorrectOption: 1},
		{ContestID: 1, Question: "A father is 3 times as old as his son. In 12 years, he will be twice as old. How old is the son now?", Options: model.StringList{"10", "12", "15", "18"}, CorrectOption: 1},
		{ContestID: 1, Question: "Which word does not belong with the others?", Options: model.StringList{"Leopard", "Cougar", "Tiger", "Wolf"}, CorrectOption: 3},
		{ContestID: 1, Question: "If 5 workers can build a wall in 12 days, how many days will 10 workers take?", Options: model.StringList{"4", "6", "8", "10"}, CorrectOption: 1},
		{ContestID: 1, Question: "What is 15% of 200?", Options: model.StringList{"20", "25", "30", "35"}, CorrectOption: 2},
		{ContestID: 1, Question: "Find the odd one out.", Options: model.StringList{"Square", "Circle", "Rectangle", "Triangle"}, CorrectOption: 1},
		{ContestID: 1, Question: "If RED is coded as 27, how is BLUE coded?", Options: model.StringList{"36", "40", "44", "48"}, CorrectOption: 1},
		// Contest 2: coding sprint
		{ContestID: 2, Question: "What is the time complexity of searching in a balanced BST?", Options: model.StringList{"O(1)", "O(n)", "O(log n)", "O(n^2)"}, CorrectOption: 2},
		{ContestID: 2, Question: "Which data structure uses LIFO principle?", Options: model.StringList{"Queue", "Stack", "Linked List", "Array"}, CorrectOption: 1},
		{ContestID: 2, Question: "What is the result of 5 + '5' in JavaScript?", Options: model.StringList{"10", "55", "Error", "NaN"}, CorrectOption: 1},
		{ContestID: 2, Question: "Which keyword is used to define a constant in JS?", Options: model.StringList{"var", "let", "const", "static"}, CorrectOption: 2},
	}

	if err := db.Create(&questions).Error; err != nil {
		return err
	}
	logger.Info("seeded questions", zap.Int("count", len(questions)))
	return nil
}
