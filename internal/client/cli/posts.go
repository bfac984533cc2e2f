package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	gs "github.com/dmitrijs2005/gophposts/internal/server/grpc"
)

var getMultiline = GetMultiline

const timeLayout = "2006-01-02 15:04"

func (a *App) List(ctx context.Context) error {
	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	resp, err := a.api.ListPosts(ctx)
	if err != nil {
		return a.report(err)
	}
	if len(resp.Posts) == 0 {
		fmt.Fprintln(a.out, "No posts yet")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tOWNER\tCREATED\tTITLE")
	for _, p := range resp.Posts {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.ID, p.Owner, p.CreatedAt.Local().Format(timeLayout), p.Title)
	}
	return w.Flush()
}

func (a *App) Show(ctx context.Context, id string) error {
	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	p, err := a.api.GetPost(ctx, id)
	if err != nil {
		return a.report(err)
	}
	a.printPost(p)
	return nil
}

func (a *App) Create(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}
	content, err := getMultiline(a.reader, "Content", a.out)
	if err != nil {
		return err
	}

	ctx, cancel := a.authCtx(ctx)
	defer cancel()

	p, err := a.api.CreatePost(ctx, &gs.CreatePostRequest{Title: title, Content: content})
	if err != nil {
		return a.report(err)
	}
	fmt.Fprintln(a.out, "Created post", p.ID)
	return nil
}

func (a *App) Edit(ctx context.Context, id string) error {
	title, err := getSimpleText(a.reader, "New title", a.out)
	if err != nil {
		return err
	}
	content, err := getMultiline(a.reader, "New content", a.out)
	if err != nil {
		return err
	}

	ctx, cancel := a.authCtx(ctx)
	defer cancel()

	if _, err := a.api.UpdatePost(ctx, &gs.UpdatePostRequest{ID: id, Title: title, Content: content}); err != nil {
		return a.report(err)
	}
	fmt.Fprintln(a.out, "Updated post", id)
	return nil
}

func (a *App) Delete(ctx context.Context, id string) error {
	ctx, cancel := a.authCtx(ctx)
	defer cancel()

	if err := a.api.DeletePost(ctx, id); err != nil {
		return a.report(err)
	}
	fmt.Fprintln(a.out, "Deleted post", id)
	return nil
}

func (a *App) printPost(p *gs.Post) {
	fmt.Fprintf(a.out, "%s\nby %s, created %s, modified %s\n\n%s\n",
		p.Title, p.Owner,
		p.CreatedAt.Local().Format(timeLayout),
		p.ModifiedAt.Local().Format(timeLayout),
		p.Content)
}
