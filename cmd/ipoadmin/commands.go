package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"ipoadvisor/internal/archive"
	"ipoadvisor/internal/console"
	"ipoadvisor/internal/gateway"
	"ipoadvisor/internal/model"
	"ipoadvisor/internal/storage"
)

func newDashboard(c *cli) *console.Dashboard { return console.NewDashboard(c.client, c.logger) }

// subFlags builds a flag set for one subcommand. Parse errors are already printed by
// the set, so they are reported as usage errors.
func subFlags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	return nil
}

// oneArg parses args and requires exactly one positional argument.
func oneArg(fs *flag.FlagSet, args []string) (string, error) {
	if err := parse(fs, args); err != nil {
		return "", err
	}
	if fs.NArg() != 1 {
		return "", errUsage
	}
	return fs.Arg(0), nil
}

func cmdLogin(ctx context.Context, c *cli, args []string) error {
	fs := subFlags("login")
	email := fs.String("email", "", "admin email")
	password := fs.String("password", "", "admin password")
	fromStdin := fs.Bool("password-stdin", false, "read the password from stdin")
	if err := parse(fs, args); err != nil {
		return err
	}
	if *fromStdin {
		line, err := bufio.NewReader(c.in).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("read password: %w", err)
		}
		*password = strings.TrimRight(line, "\r\n")
	}
	resp, err := c.client.Login(ctx, *email, *password)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "logged in as %s (expires %s)\n", resp.Email, resp.ExpiresAt)
	return nil
}

func cmdLogout(ctx context.Context, c *cli, _ []string) error {
	if err := newDashboard(c).Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(c.out, "logged out")
	return nil
}

func cmdVerify(ctx context.Context, c *cli, _ []string) error {
	status := c.client.VerifyStatus(ctx)
	fmt.Fprintln(c.out, status)
	switch status {
	case gateway.VerifyValid:
		return nil
	case gateway.VerifyUnavailable:
		return &gateway.Error{Kind: gateway.KindNetwork, Op: "GET /api/admin/verify", Message: "Backend unavailable"}
	default:
		return &gateway.Error{Kind: gateway.KindUnauthorized, Op: "GET /api/admin/verify", Message: "Session is not valid"}
	}
}

func cmdStats(ctx context.Context, c *cli, _ []string) error {
	stats, err := newDashboard(c).Stats(ctx)
	if err != nil {
		return err
	}
	printStats(c.out, stats)
	return nil
}

func cmdContacts(ctx context.Context, c *cli, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	tab := console.NewContactsTab(c.client)
	switch args[0] {
	case "list":
		fs := subFlags("contacts list")
		term := fs.String("q", "", "search name, company or email")
		status := fs.String("status", console.StatusAll, "status filter")
		if err := parse(fs, args[1:]); err != nil {
			return err
		}
		if err := tab.Refresh(ctx); err != nil {
			return err
		}
		printContacts(c.out, tab.Filter(*term, *status))
		return nil
	case "update":
		fs := subFlags("contacts update")
		status := fs.String("status", "", "new status")
		notes := fs.String("notes", "", "new notes")
		id, err := oneArg(fs, args[1:])
		if err != nil {
			return err
		}
		if err := tab.Refresh(ctx); err != nil {
			return err
		}
		current, ok := findContact(tab.Items(), id)
		if !ok {
			return fmt.Errorf("contact %s not found", id)
		}
		// unset flags keep the stored values
		newStatus, newNotes := current.Status, model.Deref(current.Notes)
		fs.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "status":
				newStatus = model.ContactStatus(*status)
			case "notes":
				newNotes = *notes
			}
		})
		if err := tab.Save(ctx, id, newStatus, newNotes); err != nil {
			return err
		}
		fmt.Fprintf(c.out, "contact %s updated\n", id)
		return nil
	case "delete":
		id, err := oneArg(subFlags("contacts delete"), args[1:])
		if err != nil {
			return err
		}
		if err := tab.Delete(ctx, id); err != nil {
			return err
		}
		fmt.Fprintf(c.out, "contact %s deleted\n", id)
		return nil
	}
	return errUsage
}

func findContact(items []model.Contact, id string) (model.Contact, bool) {
	for _, it := range items {
		if it.ID == id {
			return it, true
		}
	}
	return model.Contact{}, false
}

func cmdApplications(ctx context.Context, c *cli, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	tab := console.NewApplicationsTab(c.client)
	switch args[0] {
	case "list":
		fs := subFlags("applications list")
		term := fs.String("q", "", "search name, company or mobile")
		status := fs.String("status", console.StatusAll, "status filter")
		if err := parse(fs, args[1:]); err != nil {
			return err
		}
		if err := tab.Refresh(ctx); err != nil {
			return err
		}
		printApplications(c.out, tab.Filter(*term, *status))
		return nil
	case "update":
		fs := subFlags("applications update")
		status := fs.String("status", "", "new status")
		id, err := oneArg(fs, args[1:])
		if err != nil {
			return err
		}
		if err := tab.SetStatus(ctx, id, model.ApplicationStatus(*status)); err != nil {
			return err
		}
		fmt.Fprintf(c.out, "application %s is now %s\n", id, *status)
		return nil
	case "delete":
		id, err := oneArg(subFlags("applications delete"), args[1:])
		if err != nil {
			return err
		}
		if err := tab.Delete(ctx, id); err != nil {
			return err
		}
		fmt.Fprintf(c.out, "application %s deleted\n", id)
		return nil
	}
	return errUsage
}

// blogFlags are shared by blog create and blog update.
type blogFlags struct {
	fs *flag.FlagSet

	title, slug, excerpt, category *string
	content, contentFromFile       *string
	image, author, readTime        *string
}

func newBlogFlags(name string) *blogFlags {
	fs := subFlags(name)
	return &blogFlags{
		fs:              fs,
		title:           fs.String("title", "", "post title"),
		slug:            fs.String("slug", "", "URL slug (derived from the title when creating)"),
		excerpt:         fs.String("excerpt", "", "short summary"),
		content:         fs.String("content", "", "post body"),
		contentFromFile: fs.String("content-file", "", "read the post body from this file"),
		category:        fs.String("category", "", "category"),
		image:           fs.String("image", "", "cover image URL"),
		author:          fs.String("author", "", "author"),
		readTime:        fs.String("read-time", "", "read time label"),
	}
}

// apply copies the flags that were set onto the draft.
func (b *blogFlags) apply(d *console.Draft) error {
	var err error
	b.fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "title":
			d.SetTitle(*b.title)
		case "slug":
			d.SetSlug(*b.slug)
		case "excerpt":
			d.Input.Excerpt = *b.excerpt
		case "content":
			d.Input.Content = *b.content
		case "content-file":
			data, rerr := os.ReadFile(*b.contentFromFile)
			if rerr != nil {
				err = fmt.Errorf("read content: %w", rerr)
				return
			}
			d.Input.Content = string(data)
		case "category":
			d.Input.Category = *b.category
		case "image":
			d.Input.Image = *b.image
		case "author":
			d.Input.Author = *b.author
		case "read-time":
			d.Input.ReadTime = *b.readTime
		}
	})
	return err
}

func cmdBlog(ctx context.Context, c *cli, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	tab := console.NewBlogTab(c.client)
	switch args[0] {
	case "list":
		if err := tab.Refresh(ctx); err != nil {
			return err
		}
		printPosts(c.out, tab.Items())
		return nil
	case "show":
		slug, err := oneArg(subFlags("blog show"), args[1:])
		if err != nil {
			return err
		}
		post, found, err := c.client.BlogBySlug(ctx, slug)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("no post with slug %q", slug)
		}
		printPost(c.out, post)
		return nil
	case "create":
		bf := newBlogFlags("blog create")
		if err := parse(bf.fs, args[1:]); err != nil {
			return err
		}
		// an explicit -slug wins over the one derived from -title
		d := tab.NewDraft()
		if err := bf.apply(d); err != nil {
			return err
		}
		post, err := tab.Submit(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.out, "created %s\n", post.Slug)
		return nil
	case "update":
		bf := newBlogFlags("blog update")
		slug, err := oneArg(bf.fs, args[1:])
		if err != nil {
			return err
		}
		if err := tab.Refresh(ctx); err != nil {
			return err
		}
		var d *console.Draft
		for _, p := range tab.Items() {
			if p.Slug == slug {
				d = tab.Edit(p)
				break
			}
		}
		if d == nil {
			return fmt.Errorf("no post with slug %q", slug)
		}
		if err := bf.apply(d); err != nil {
			return err
		}
		post, err := tab.Submit(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.out, "updated %s\n", post.Slug)
		return nil
	case "delete":
		slug, err := oneArg(subFlags("blog delete"), args[1:])
		if err != nil {
			return err
		}
		if err := tab.Delete(ctx, slug); err != nil {
			return err
		}
		fmt.Fprintf(c.out, "deleted %s\n", slug)
		return nil
	}
	return errUsage
}

func cmdFiles(ctx context.Context, c *cli, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	tab := console.NewFilesTab(c.client)
	switch args[0] {
	case "list":
		fs := subFlags("files list")
		term := fs.String("q", "", "search file names")
		fileType := fs.String("type", console.StatusAll, "image, document, other or all")
		if err := parse(fs, args[1:]); err != nil {
			return err
		}
		if err := tab.Refresh(ctx); err != nil {
			return err
		}
		printFiles(c.out, tab.Filter(*term, *fileType))
		return nil
	case "upload":
		fs := subFlags("files upload")
		if err := parse(fs, args[1:]); err != nil {
			return err
		}
		if fs.NArg() == 0 {
			return errUsage
		}
		batch := make([]gateway.FileUpload, 0, fs.NArg())
		for _, p := range fs.Args() {
			batch = append(batch, gateway.FileFromPath(p))
		}
		results, err := tab.Upload(ctx, batch)
		failed := printUploads(c.out, results)
		if err != nil {
			return fmt.Errorf("uploaded, but refreshing the list failed: %w", err)
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d uploads failed", failed, len(results))
		}
		return nil
	case "delete":
		name, err := oneArg(subFlags("files delete"), args[1:])
		if err != nil {
			return err
		}
		if err := tab.Delete(ctx, name); err != nil {
			return err
		}
		fmt.Fprintf(c.out, "deleted %s\n", name)
		return nil
	case "url":
		name, err := oneArg(subFlags("files url"), args[1:])
		if err != nil {
			return err
		}
		fmt.Fprintln(c.out, tab.URL(name))
		return nil
	case "download":
		fs := subFlags("files download")
		dest := fs.String("o", "", "output path (default: the file name)")
		name, err := oneArg(fs, args[1:])
		if err != nil {
			return err
		}
		if *dest == "" {
			*dest = filepath.Base(name)
		}
		return download(ctx, c, name, *dest)
	case "backup", "restore", "link":
		return cmdArchive(ctx, c, args)
	}
	return errUsage
}

// download writes to a temporary file first so a failed transfer leaves no partial file.
func download(ctx context.Context, c *cli, name, dest string) error {
	tmp, err := os.CreateTemp(filepath.Dir(dest), ".ipoadmin-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := c.client.DownloadFile(ctx, name, tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmp.Name(), dest); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "saved %s\n", dest)
	return nil
}

func cmdArchive(ctx context.Context, c *cli, args []string) error {
	if c.cfg.MinIO.Endpoint == "" {
		return errors.New("archive storage is not configured: set MINIO_ENDPOINT and MINIO_BUCKET")
	}
	store, err := storage.NewMinIO(ctx, c.cfg.MinIO)
	if err != nil {
		return err
	}
	arc := archive.New(c.client, store, c.cfg.MinIO.Prefix, c.logger)

	switch args[0] {
	case "backup":
		results, err := arc.Backup(ctx)
		if err != nil {
			return err
		}
		failed := printBackup(c.out, results)
		if failed > 0 {
			return fmt.Errorf("%d of %d files failed to back up", failed, len(results))
		}
		return nil
	case "restore":
		name, err := oneArg(subFlags("files restore"), args[1:])
		if err != nil {
			return err
		}
		f, err := arc.Restore(ctx, name)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.out, "restored %s as %s\n", name, f.Name)
		return nil
	case "link":
		fs := subFlags("files link")
		expiry := fs.Duration("expiry", time.Hour, "link lifetime")
		name, err := oneArg(fs, args[1:])
		if err != nil {
			return err
		}
		link, err := arc.Link(ctx, name, *expiry)
		if err != nil {
			return err
		}
		fmt.Fprintln(c.out, link)
		return nil
	}
	return errUsage
}

func cmdContact(ctx context.Context, c *cli, args []string) error {
	fs := subFlags("contact")
	name := fs.String("name", "", "full name")
	company := fs.String("company", "", "company name")
	mobile := fs.String("mobile", "", "mobile number")
	email := fs.String("email", "", "email (optional)")
	turnover := fs.String("turnover", "", "annual turnover (optional)")
	message := fs.String("message", "", "message (optional)")
	if err := parse(fs, args); err != nil {
		return err
	}
	contact, err := c.client.SubmitContact(ctx, model.ContactRequest{
		Name:           *name,
		CompanyName:    *company,
		MobileNumber:   *mobile,
		AnnualTurnover: model.OptionalString(*turnover),
		Email:          model.OptionalString(*email),
		Message:        model.OptionalString(*message),
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "inquiry %s received\n", contact.ID)
	return nil
}

func cmdApply(ctx context.Context, c *cli, args []string) error {
	fs := subFlags("apply")
	name := fs.String("name", "", "full name")
	company := fs.String("company", "", "company name")
	turnover := fs.String("turnover", "", "annual turnover")
	mobile := fs.String("mobile", "", "mobile number")
	if err := parse(fs, args); err != nil {
		return err
	}
	receipt, err := c.client.SubmitApplication(ctx, model.ApplicationRequest{
		Name:           *name,
		CompanyName:    *company,
		AnnualTurnover: *turnover,
		MobileNumber:   *mobile,
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, receipt.Message)
	return nil
}
