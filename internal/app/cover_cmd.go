package app

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bookloft/biblioctl/internal/cover"
)

func newCoverCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cover",
		Short: "Manage cover images",
	}
	cmd.AddCommand(newCoverSetCmd(), newCoverGetCmd(), newCoverSearchCmd(), newCoverRmCmd())
	return cmd
}

func newCoverRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id|isbn>",
		Short: "Drop a book's cover from the local cache",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := findBook(cmd, args[0])
			if err != nil {
				return err
			}
			if b.ISBN == "" {
				return fmt.Errorf("%q has no ISBN; covers are cached by ISBN", b.Title)
			}

			cache := cover.NewCache(cfg.Defaults.CacheDir)
			if cache.Find(b.ISBN) == "" {
				warn("No cached cover for %s", b.ISBN)
				return nil
			}
			if err := cache.Remove(b.ISBN); err != nil {
				return err
			}
			ok("Removed cached cover for %s", b.ISBN)
			return nil
		},
	}
}

func newCoverSearchCmd() *cobra.Command {
	var pick bool

	cmd := &cobra.Command{
		Use:   "search <id|isbn>",
		Short: "Find candidate covers for a book",
		Long: `Search book metadata by the record's title and author and list
the cover images the results carry. With --pick, choose one to upload.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := findBook(cmd, args[0])
			if err != nil {
				return err
			}

			candidates, err := client.SearchMetadata(cmd.Context(), b.Title, b.Author, b.Language)
			if err != nil {
				return fmt.Errorf("search: %w", err)
			}
			var urls []string
			for _, c := range candidates {
				if c.CoverURL != "" {
					urls = append(urls, c.CoverURL)
				}
			}
			if len(urls) == 0 {
				fmt.Println("No covers found.")
				return nil
			}

			for i, u := range urls {
				fmt.Printf("%-3d %s\n", i+1, u)
			}
			if !pick {
				return nil
			}

			answer, err := promptLine("Upload which # (empty to cancel)")
			if err != nil {
				return err
			}
			if answer == "" {
				return nil
			}
			n, err := strconv.Atoi(answer)
			if err != nil || n < 1 || n > len(urls) {
				return fmt.Errorf("invalid selection %q", answer)
			}

			set := newCoverSetCmd()
			set.SetArgs([]string{b.ID, "--url", urls[n-1]})
			return set.ExecuteContext(cmd.Context())
		},
	}

	cmd.Flags().BoolVar(&pick, "pick", false, "Choose a cover to upload")
	return cmd
}

func newCoverSetCmd() *cobra.Command {
	var (
		fromURL  string
		fromFile string
	)

	cmd := &cobra.Command{
		Use:   "set <id|isbn>",
		Short: "Upload a cover image for a book",
		Long: `Upload a cover from a URL or a local file. URLs are fetched
locally first (falling back to CORS relay services for hosts that
refuse direct requests) and sent inline, so the server never needs to
reach the source host itself.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if fromURL == "" && fromFile == "" {
				return fmt.Errorf("one of --url or --file is required")
			}
			if fromURL != "" && fromFile != "" {
				return fmt.Errorf("--url and --file are mutually exclusive")
			}

			b, err := findBook(cmd, args[0])
			if err != nil {
				return err
			}
			if b.ISBN == "" {
				return fmt.Errorf("%q has no ISBN; covers are stored by ISBN", b.Title)
			}

			var data []byte
			if fromURL != "" {
				dl := cover.NewDownloader()
				data, _, err = dl.Download(cmd.Context(), fromURL)
				if err != nil {
					return fmt.Errorf("fetching cover: %w", err)
				}
			} else {
				data, err = os.ReadFile(fromFile)
				if err != nil {
					return err
				}
			}

			result, err := client.UploadCover(cmd.Context(), cover.DataURL(data), b.ISBN)
			if err != nil {
				return fmt.Errorf("uploading cover: %w", err)
			}

			// The upload only stores the image; the record has to be
			// updated separately to point at it.
			b.Cover = cover.URL(result.RelativePath)
			if err := client.UpdateBook(cmd.Context(), b.ID, b); err != nil {
				return fmt.Errorf("linking cover to record: %w", err)
			}
			if err := store.Replace(b.ID, b); err != nil {
				return err
			}

			cache := cover.NewCache(cfg.Defaults.CacheDir)
			if path, err := cache.Store(b.ISBN, data); err == nil {
				ok("Cover cached at %s", path)
			}
			ok("Cover set for %q", b.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&fromURL, "url", "", "Image URL to fetch")
	cmd.Flags().StringVar(&fromFile, "file", "", "Local image file to upload")
	return cmd
}

func newCoverGetCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "get <id|isbn>",
		Short: "Download a book's cover to the local cache",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := findBook(cmd, args[0])
			if err != nil {
				return err
			}
			if b.Cover.IsAbsent() {
				return fmt.Errorf("%q has no cover", b.Title)
			}
			if b.ISBN == "" {
				return fmt.Errorf("%q has no ISBN; covers are cached by ISBN", b.Title)
			}

			cache := cover.NewCache(cfg.Defaults.CacheDir)
			if !force {
				if path := cache.Find(b.ISBN); path != "" {
					ok("Already cached: %s", path)
					return nil
				}
			}

			var data []byte
			switch b.Cover.Kind() {
			case cover.KindBytes:
				data = b.Cover.Raw()
			case cover.KindBase64:
				data, err = cover.Decode(b.Cover.Text())
				if err != nil {
					return fmt.Errorf("decoding stored cover: %w", err)
				}
			default:
				target := b.Cover.Text()
				if !strings.HasPrefix(target, "http") {
					// Server-relative path; covers live next to the API.
					target = strings.TrimSuffix(cfg.API.BaseURL, "/api") + b.Cover.DisplayURL()
				}
				dl := cover.NewDownloader()
				data, _, err = dl.Download(cmd.Context(), target)
				if err != nil {
					return fmt.Errorf("downloading cover: %w", err)
				}
			}

			path, err := cache.Store(b.ISBN, data)
			if err != nil {
				return fmt.Errorf("caching cover: %w", err)
			}
			ok("Cached: %s", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Re-download even if already cached")
	return cmd
}
