// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package domain

import "math"

// DefaultCredits 没传学分就按 3 算
const DefaultCredits = 3

var gradePoints = map[string]float64{
	"A+": 10, "A": 9, "B+": 8, "B": 7, "C": 6, "D": 5, "F": 0,
}

type Result struct {
	Id        int64
	StudentId int64
	Semester  int
	Subject   string
	Marks     float64
	// Grade 在录入时根据分数算出来，之后不再重算
	Grade        string
	Credits      int
	AcademicYear string
	Ctime        int64
	Utime        int64
}

// Entry 录入成绩时一门课的输入
type Entry struct {
	Subject string
	Marks   float64
	Credits int
}

// Report 按学期分组的成绩单
type Report struct {
	// Results key 是学期
	Results map[int][]Result
	// SemesterGPAs key 是学期
	SemesterGPAs map[int]float64
	OverallGPA   float64
}

// GradeOf 分数到等级，阈值含下界
func GradeOf(marks float64) string {
	switch {
	case marks >= 90:
		return "A+"
	case marks >= 80:
		return "A"
	case marks >= 70:
		return "B+"
	case marks >= 60:
		return "B"
	case marks >= 50:
		return "C"
	case marks >= 40:
		return "D"
	default:
		return "F"
	}
}

// GPA 按学分加权的平均绩点，保留两位小数。没有学分就是 0
func GPA(results []Result) float64 {
	var totalPoints, totalCredits float64
	for _, r := range results {
		totalPoints += gradePoints[r.Grade] * float64(r.Credits)
		totalCredits += float64(r.Credits)
	}
	if totalCredits == 0 {
		return 0
	}
	return math.Round(totalPoints/totalCredits*100) / 100
}

// NewReport 把按 (学期, 科目) 排好序的成绩组装成成绩单
func NewReport(results []Result) Report {
	grouped := make(map[int][]Result)
	for _, r := range results {
		grouped[r.Semester] = append(grouped[r.Semester], r)
	}
	gpas := make(map[int]float64, len(grouped))
	for sem, rs := range grouped {
		gpas[sem] = GPA(rs)
	}
	return Report{
		Results:      grouped,
		SemesterGPAs: gpas,
		OverallGPA:   GPA(results),
	}
}
