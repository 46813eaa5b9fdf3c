package services

import "student-results/app/models"

// GradeBands are tested in order; the first band whose lower bound is met wins.
var GradeBands = []models.GradeBand{
	{Grade: models.Grade{Letter: models.GradeAPlus, Color: models.ColorEmerald}, MinMarks: 90, MaxMarks: 100},
	{Grade: models.Grade{Letter: models.GradeA, Color: models.ColorBlue}, MinMarks: 80, MaxMarks: 89},
	{Grade: models.Grade{Letter: models.GradeB, Color: models.ColorViolet}, MinMarks: 70, MaxMarks: 79},
	{Grade: models.Grade{Letter: models.GradeC, Color: models.ColorAmber}, MinMarks: 60, MaxMarks: 69},
	{Grade: models.Grade{Letter: models.GradeD, Color: models.ColorRed}, MinMarks: 50, MaxMarks: 59},
	{Grade: models.Grade{Letter: models.GradeF, Color: models.ColorCrimson}, MinMarks: 0, MaxMarks: 49},
}

// GradeOf maps marks to a letter grade. Committed results are always in
// [0,100]; anything above 100 grades as A+ and anything below 0 as F.
func GradeOf(marks int) models.Grade {
	for _, band := range GradeBands {
		if marks >= band.MinMarks {
			return band.Grade
		}
	}
	return GradeBands[len(GradeBands)-1].Grade
}

// GradeDistribution counts results per letter grade. Every grade is present
// in the returned map, with zero when no result has it.
func GradeDistribution(results []models.Result) map[models.GradeLetter]int {
	dist := make(map[models.GradeLetter]int, len(models.GradeLetters))
	for _, letter := range models.GradeLetters {
		dist[letter] = 0
	}
	for _, r := range results {
		dist[GradeOf(r.Marks).Letter]++
	}
	return dist
}
