package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	get "github.com/hashicorp/go-getter"
)

type packList []string

func (p *packList) String() string {
	return strings.Join(*p, ",")
}

func (p *packList) Set(v string) error {
	*p = append(*p, v)
	return nil
}

func main() {
	var (
		base     = flag.String("base", "https://github.com/PrismarineJS/minecraft-data.git", "base url")
		platform = flag.String("platform", "pc", "platform of schemes")
		ver      = flag.String("version", "1.21.1", "version of schemes")
		out      = flag.String("o", "./scheme", "output dir path")
		packsDir = flag.String("packs", "./resourcepacks", "resource packs dir for -pack downloads")
	)
	var packs packList
	flag.Var(&packs, "pack", "go-getter url of a resource pack to fetch (repeatable)")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *out == "" || *platform == "" || *ver == "" {
		log.Error("output dir, platform and version are required")
		os.Exit(2)
	}

	path := filepath.Join(*out, fmt.Sprintf("%s-%s", *platform, *ver))
	if err := os.RemoveAll(path); err != nil {
		log.Error("clean scheme dir", "path", path, "error", err)
		os.Exit(1)
	}

	// https://github.com/PrismarineJS/minecraft-data/tree/master/data/pc/1.21.1
	url := fmt.Sprintf("git::%s//data/%s/%s", *base, *platform, *ver)

	log.Info("downloading scheme", "url", url, "path", path)
	if err := get.Get(path, url); err != nil {
		log.Error("download scheme", "error", err)
		os.Exit(1)
	}
	log.Info("scheme ready, run dynlights with -gamedata " + path)

	for _, src := range packs {
		dst := filepath.Join(*packsDir, packName(src))
		log.Info("downloading resource pack", "url", src, "path", dst)
		if err := get.Get(dst, src); err != nil {
			log.Error("download resource pack", "url", src, "error", err)
			os.Exit(1)
		}
	}
}

// packName derives a directory name from a go-getter source such as
// "git::https://example.com/packs.git//glowing?ref=v1".
func packName(src string) string {
	if _, rest, ok := strings.Cut(src, "::"); ok {
		src = rest
	}
	src, _, _ = strings.Cut(src, "?")
	src = strings.TrimSuffix(strings.TrimRight(src, "/"), ".git")
	name := src[strings.LastIndexAny(src, "/\\")+1:]
	name = strings.TrimSuffix(name, ".zip")
	if name == "" {
		return "pack"
	}
	return name
}
