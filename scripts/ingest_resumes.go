package main

import (
	"context"
	"flag"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"alfredoptarigan/resume-extractor/internal/config"
	"alfredoptarigan/resume-extractor/internal/extraction"
	"alfredoptarigan/resume-extractor/internal/repositories"
	"alfredoptarigan/resume-extractor/internal/services"
)

func main() {
	dir := flag.String("dir", "./resumes", "directory to scan for .pdf and .docx résumés")
	docType := flag.String("type", "Resume", "document type recorded for every file")
	flag.Parse()

	log.Println("🚀 Starting résumé ingestion...")

	// Load configuration
	cfg := config.Load()

	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	headings, err := extraction.HeadingsFor(cfg.Extraction.SectionVocabulary)
	if err != nil {
		log.Fatalf("❌ Invalid extraction config: %v", err)
	}

	recognizer, err := extraction.DefaultRecognizer()
	if err != nil {
		log.Fatalf("❌ Failed to load entity model: %v", err)
	}

	resumeService := services.NewResumeService(
		repositories.NewStudentRepository(db),
		services.NewDocumentParserService(),
		extraction.NewExtractor(recognizer, extraction.NewSegmenter(headings)),
	)

	worker := services.NewWorker(resumeService, cfg.Worker.Concurrency, cfg.Worker.QueueSize)
	worker.Start(context.Background())

	files, err := resumeFiles(*dir)
	if err != nil {
		log.Printf("❌ Failed to scan %s: %v", *dir, err)
	}

	queued := 0
	for _, path := range files {
		if err := worker.EnqueueJob(services.IngestRequest{
			FilePath:     path,
			OriginalName: filepath.Base(path),
			DocumentType: *docType,
		}); err != nil {
			log.Printf("❌ Failed to enqueue %s: %v", path, err)
			continue
		}
		queued++
	}

	worker.Stop()
	stats := worker.Stats()

	// Summary
	log.Println("\n" + strings.Repeat("=", 60))
	log.Printf("📊 Ingestion Summary:")
	log.Printf("   📥 Queued: %d résumés", queued)
	log.Printf("   ✅ Successful: %d résumés", stats.Succeeded)
	log.Printf("   ❌ Failed: %d résumés", stats.Failed)
	log.Println(strings.Repeat("=", 60))

	if stats.Failed > 0 || err != nil || queued < len(files) {
		log.Println("⚠️  Some résumés failed to ingest. Please check the logs above.")
		os.Exit(1)
	}

	log.Println("✅ All résumés ingested successfully!")
}

// resumeFiles lists the .pdf and .docx files under root. An unreadable
// subdirectory is skipped; an unreadable root is an error.
func resumeFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			log.Printf("   ⚠️  Skipping %s: %v", path, err)
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if _, err := services.FormatOf(path); err != nil {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
