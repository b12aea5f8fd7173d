package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// struct pour les paramètres de configuration
type Config struct {
	// Dossier racine de l'archive vidéo ; les fichiers de sous-titres
	// canoniques sont écrits dessous, au chemin dérivé par tracks.MediaPath.
	VideosDir string `yaml:"videos_dir"`

	// Sous-titres
	Subtitles struct {
		// Languages : codes de langues séparés par des virgules ("en, de")
		Languages string `yaml:"languages"`
		// Source : "user" = uniquement les pistes de l'auteur ;
		// "auto" = fallback sur les captions auto-générées
		Source string `yaml:"source"`
		// Index : pousser les fragments vers le store de documents
		Index bool `yaml:"index"`
	} `yaml:"subtitles"`

	// Store de documents
	Index struct {
		URL  string `yaml:"url"`
		Name string `yaml:"name"`

		// credentials via variables d'environnement, jamais dans le yaml
		Username string `yaml:"-"`
		Password string `yaml:"-"`
	} `yaml:"index"`

	// Téléchargement des pistes brutes
	Fetch struct {
		TimeoutSec int   `yaml:"timeout_sec"`
		MaxBytes   int64 `yaml:"max_bytes"`
	} `yaml:"fetch"`
}

// configuration par défaut (utilisée telle quelle si aucun fichier n'est fourni)
func defaultConfig() *Config {
	c := &Config{}

	c.VideosDir = "."

	c.Subtitles.Languages = "en"
	c.Subtitles.Source = "user"
	c.Subtitles.Index = false

	c.Index.URL = "http://localhost:9200"
	c.Index.Name = "ta_subtitle"

	c.Fetch.TimeoutSec = 15
	c.Fetch.MaxBytes = 10_000_000

	return c
}

// Load lit la config depuis path ; path vide -> defaults purs.
// Les champs présents dans le yaml écrasent les defaults, les absents les
// conservent.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("lecture du fichier de configuration %s impossible : %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("analyse du fichier de configuration %s impossible : %w", path, err)
	}

	cfg.normalize()
	return cfg, nil
}

// ApplyEnv superpose les variables d'environnement (chargées par godotenv ou
// présentes dans le process) : URL et credentials du store.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("SUBALIGN_INDEX_URL"); v != "" {
		c.Index.URL = v
	}
	if v := os.Getenv("SUBALIGN_INDEX_USER"); v != "" {
		c.Index.Username = v
	}
	if v := os.Getenv("SUBALIGN_INDEX_PASSWORD"); v != "" {
		c.Index.Password = v
	}
}

func (c *Config) normalize() {
	c.VideosDir = filepath.Clean(strings.TrimSpace(c.VideosDir))
	if c.VideosDir == "" {
		c.VideosDir = "."
	}

	c.Subtitles.Source = strings.TrimSpace(strings.ToLower(c.Subtitles.Source))
	if c.Subtitles.Source == "" {
		c.Subtitles.Source = "user"
	}

	c.Index.Name = strings.TrimSpace(c.Index.Name)
	if c.Index.Name == "" {
		c.Index.Name = "ta_subtitle"
	}

	if c.Fetch.TimeoutSec <= 0 {
		c.Fetch.TimeoutSec = 15
	}
	if c.Fetch.MaxBytes <= 0 {
		c.Fetch.MaxBytes = 10_000_000
	}
}

// Languages renvoie la liste des codes de langues configurés, nettoyés.
func (c *Config) Languages() []string {
	var out []string
	for _, lang := range strings.Split(c.Subtitles.Languages, ",") {
		lang = strings.TrimSpace(lang)
		if lang != "" {
			out = append(out, lang)
		}
	}
	return out
}

// IncludeAuto renvoie true si les captions auto-générées servent de fallback.
func (c *Config) IncludeAuto() bool {
	return c.Subtitles.Source == "auto"
}
