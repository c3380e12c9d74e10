// Bulk-imports quiz questions from an XLSX workbook into the questions
// table. Rows are (text, answer, remarks) with a header row. Questions
// longer than the Telegram poll limit and questions already in the
// database are skipped.
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/microcosm-cc/bluemonday"
	"github.com/xuri/excelize/v2"
	"github.com/zackjh/discquiz/internal/config"
	"github.com/zackjh/discquiz/internal/database"
	"github.com/zackjh/discquiz/internal/models"
	"github.com/zackjh/discquiz/internal/repositories"
	"github.com/zackjh/discquiz/pkg/errors"
	"github.com/zackjh/discquiz/pkg/logger"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: import_questions <questions.xlsx>")
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	logger.Init()
	defer logger.Sync()

	cfg, err := config.LoadServerConfig()
	if err != nil {
		log.Fatal("failed to load config:", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	if err := database.AutoMigrate(db); err != nil {
		log.Fatal("failed to run migrations:", err)
	}

	questionRepo := repositories.NewQuestionRepository(db)

	f, err := excelize.OpenFile(os.Args[1])
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	// The question text comes from scraped quiz pages; strip any markup
	// that survived scraping before it reaches the database.
	sanitizer := bluemonday.StrictPolicy()

	var added, alreadyExists, tooLong, invalid int

	for _, sheetName := range f.GetSheetList() {
		rows, err := f.GetRows(sheetName)
		if err != nil {
			fmt.Printf("Error reading sheet %s: %v\n", sheetName, err)
			continue
		}

		for i, row := range rows {
			if i == 0 || len(row) < 2 { // Skip header or invalid rows
				continue
			}

			// row[0]: question text
			// row[1]: answer (TRUE/FALSE)
			// row[2]: remarks (optional)
			text := strings.TrimSpace(sanitizer.Sanitize(row[0]))
			answer := strings.ToUpper(strings.TrimSpace(row[1]))
			remarks := ""
			if len(row) > 2 {
				remarks = strings.TrimSpace(sanitizer.Sanitize(row[2]))
			}

			if answer != models.AnswerTrue && answer != models.AnswerFalse {
				fmt.Printf("Invalid answer %q in sheet %s row %d\n", row[1], sheetName, i+1)
				invalid++
				continue
			}

			if len(text) > models.MaxQuestionLength {
				// Telegram polls have a 300 character question limit
				tooLong++
				continue
			}

			if _, err := questionRepo.GetQuestionByText(text); err == nil {
				alreadyExists++
				continue
			} else if !errors.HasCode(err, errors.ErrCodeNotFound) {
				log.Fatal("failed to check for duplicate question:", err)
			}

			question := models.Question{
				Text:    text,
				Answer:  answer,
				Remarks: remarks,
			}
			if err := questionRepo.CreateQuestion(&question); err != nil {
				fmt.Printf("Error creating question in sheet %s row %d: %v\n", sheetName, i+1, err)
				invalid++
				continue
			}
			added++
		}
	}

	fmt.Println("Operation Complete")
	fmt.Printf("• %d questions added\n", added)
	fmt.Printf("• %d questions not added as they already exist in the database\n", alreadyExists)
	fmt.Printf("• %d questions not added as they contain too many characters\n", tooLong)
	if invalid > 0 {
		fmt.Printf("• %d rows skipped as invalid\n", invalid)
	}
}
