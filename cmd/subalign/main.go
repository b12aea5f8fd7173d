package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/patrickprogramme/subalign/internal/app"
	"github.com/patrickprogramme/subalign/internal/config"
	"github.com/patrickprogramme/subalign/internal/index"
	"github.com/patrickprogramme/subalign/pkg/model"
)

// cliFlags contient les informations venant des flags de l'app
type cliFlags struct {
	ConfigPath string
	MetaPath   string
	InputPath  string
	VideoID    string
	Lang       string
	Source     string
	DeleteID   string
}

func main() {
	flags := parseFlags()

	// .env optionnel (credentials du store) ; son absence n'est pas une erreur
	if err := godotenv.Load(); err == nil {
		log.Println("environnement chargé depuis .env")
	}

	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		log.Fatalf("config load: %v", err)
	}
	cfg.ApplyEnv()

	// root context qui s'annule sur SIGINT / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// client du store uniquement si l'indexation est demandée
	var store index.Interface
	if cfg.Subtitles.Index || flags.DeleteID != "" {
		client, cerr := index.New(cfg.Index.URL, cfg.Index.Name, cfg.Index.Username, cfg.Index.Password)
		if cerr != nil {
			log.Fatalf("index client: %v", cerr)
		}
		store = client
	}

	a := app.New(cfg, store)

	switch {
	case flags.DeleteID != "":
		if err := a.DeleteVideo(ctx, flags.DeleteID); err != nil {
			log.Fatalf("delete video %s: %v", flags.DeleteID, err)
		}
		fmt.Printf("fragments de %s purgés de l'index\n", flags.DeleteID)

	case flags.MetaPath != "":
		meta, catalog, err := app.LoadMetaFile(flags.MetaPath)
		if err != nil {
			log.Fatalf("load metadata: %v", err)
		}
		fmt.Print(meta.Pretty())
		if err := a.Run(ctx, meta, catalog); err != nil {
			log.Fatalf("app run: %v", err)
		}

	case flags.InputPath != "":
		if err := runLocalFile(ctx, a, flags); err != nil {
			log.Fatalf("process %s: %v", flags.InputPath, err)
		}

	default:
		flag.Usage()
		os.Exit(2)
	}
}

// runLocalFile traite un fichier VTT déjà présent sur disque (pas de download).
func runLocalFile(ctx context.Context, a *app.App, flags *cliFlags) error {
	if strings.TrimSpace(flags.VideoID) == "" {
		return fmt.Errorf("-id est requis avec -input")
	}
	source, err := model.ParseSubSource(flags.Source)
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(flags.InputPath)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	meta := model.VideoMeta{YoutubeID: flags.VideoID}
	track := model.SubtitleTrack{Lang: flags.Lang, Source: source}
	return a.ProcessRaw(ctx, meta, track, string(raw))
}

func parseFlags() *cliFlags {
	f := &cliFlags{}
	flag.StringVar(&f.ConfigPath, "config", "", "chemin du fichier de configuration yaml")
	flag.StringVar(&f.MetaPath, "meta", "", "fichier JSON de métadonnées de la vidéo (pipeline complet)")
	flag.StringVar(&f.InputPath, "input", "", "fichier VTT local à traiter (avec -id/-lang/-source)")
	flag.StringVar(&f.VideoID, "id", "", "identifiant de la vidéo (mode -input)")
	flag.StringVar(&f.Lang, "lang", "en", "code de langue de la piste (mode -input)")
	flag.StringVar(&f.Source, "source", "auto", "provenance de la piste: user | auto (mode -input)")
	flag.StringVar(&f.DeleteID, "delete", "", "purge les fragments indexés de cette vidéo puis quitte")
	flag.Parse()
	return f
}
