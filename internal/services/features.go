package services

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"hiring-intel/internal/models"
)

// skillVocabulary is the fixed set of technology and methodology terms
// recognized in resume text. Matching is case-insensitive substring search;
// display form is title-cased.
var skillVocabulary = []string{
	"python", "java", "javascript", "typescript", "react", "angular", "vue",
	"node", "express", "django", "flask", "spring", "sql", "nosql",
	"mongodb", "postgresql", "mysql", "redis", "aws", "azure", "gcp",
	"docker", "kubernetes", "git", "ci/cd", "agile", "scrum",
	"machine learning", "deep learning", "ai", "data science",
	"html", "css", "rest", "api", "microservices",
}

// experiencePatterns match statements like "5 years of experience",
// "experience of 5 years", and "5 years in". The largest match wins.
var experiencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\+?\s*years?\s+(?:of\s+)?experience`),
	regexp.MustCompile(`experience\s+(?:of\s+)?(\d+)\+?\s*years?`),
	regexp.MustCompile(`(\d+)\+?\s*years?\s+in`),
}

// projectStems are action indicators whose occurrence counts proxy for
// project volume. Overlapping stems on one bullet each count; the sum is a
// deliberate heuristic, not an exact project count.
var projectStems = []string{"project", "developed", "built", "created", "implemented"}

const maxProjectCount = 20

// educationTiers in strict highest-first priority order. A resume that
// mentions both "PhD" and "Bachelor" scores the doctorate tier.
var educationTiers = []struct {
	score    int
	keywords []string
}{
	{5, []string{"phd", "ph.d", "doctorate"}},
	{4, []string{"master", "msc", "m.sc", "mba", "m.b.a"}},
	{3, []string{"bachelor", "bsc", "b.sc", "ba", "b.a", "bs", "b.s"}},
	{2, []string{"associate", "diploma"}},
	{1, []string{"high school", "secondary"}},
}

// ExtractFeatures scans resume text for structured signal: known skills,
// stated years of experience, a project-count heuristic, and education
// level. Empty or unparseable text degrades to zeroed features.
func ExtractFeatures(resumeText string) models.ExtractedFeatures {
	return models.ExtractedFeatures{
		Skills:          extractSkills(resumeText),
		YearsExperience: extractYearsExperience(resumeText),
		ProjectCount:    extractProjectCount(resumeText),
		EducationScore:  extractEducationScore(resumeText),
	}
}

func extractSkills(text string) []string {
	textLower := strings.ToLower(text)

	skills := make([]string, 0)
	for _, skill := range skillVocabulary {
		if strings.Contains(textLower, skill) {
			skills = append(skills, titleCase(skill))
		}
	}
	return skills
}

func extractYearsExperience(text string) int {
	textLower := strings.ToLower(text)

	maxYears := 0
	for _, pattern := range experiencePatterns {
		for _, match := range pattern.FindAllStringSubmatch(textLower, -1) {
			if years, err := strconv.Atoi(match[1]); err == nil && years > maxYears {
				maxYears = years
			}
		}
	}
	return maxYears
}

func extractProjectCount(text string) int {
	textLower := strings.ToLower(text)

	count := 0
	for _, stem := range projectStems {
		count += strings.Count(textLower, stem)
	}
	if count > maxProjectCount {
		count = maxProjectCount
	}
	return count
}

func extractEducationScore(text string) int {
	textLower := strings.ToLower(text)

	for _, tier := range educationTiers {
		for _, keyword := range tier.keywords {
			if strings.Contains(textLower, keyword) {
				return tier.score
			}
		}
	}
	return 0
}

// titleCase upper-cases the first letter of every word, where a word starts
// at the beginning of the string or after any non-letter. "ci/cd" becomes
// "Ci/Cd", "machine learning" becomes "Machine Learning".
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) && !prevLetter {
			b.WriteRune(unicode.ToUpper(r))
		} else {
			b.WriteRune(r)
		}
		prevLetter = unicode.IsLetter(r)
	}
	return b.String()
}
