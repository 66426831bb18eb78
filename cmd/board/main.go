package main

import (
	"Crudboard/internal/api/dto"
	"Crudboard/internal/config"
	"Crudboard/internal/model"
	"Crudboard/internal/pkg/logger"
	"Crudboard/internal/pkg/util"
	"Crudboard/internal/service"
	"Crudboard/internal/wire"
	"context"
	"errors"
	"flag"
	"fmt"
	log "log/slog"
	"os"
	"time"
)

func main() {
	// 加载配置
	if err := config.LoadConfig(); err != nil {
		log.Error("Fatal error: failed to load configuration", "err", err)
		os.Exit(1)
	}

	// 初始化日志
	logger.InitLogger()

	app, err := wire.BuildApplication(config.Cfg)
	if err != nil {
		log.Error("Fatal error: failed to build application", "err", err)
		os.Exit(1)
	}
	defer app.Close()

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	ctx := context.Background()
	if err := run(ctx, app, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: board <command> [flags]

commands:
  signup     회원가입
  login      로그인
  logout     로그아웃
  whoami     현재 세션 정보
  posts      게시글 목록
  post       게시글 상세 (조회수 증가)
  write      글 작성
  edit       글 수정
  delete     글 삭제
  comment    댓글 작성
  uncomment  댓글 삭제`)
}

func run(ctx context.Context, app *wire.ApplicationContainer, cmd string, args []string) error {
	switch cmd {
	case "signup":
		return runSignup(ctx, app, args)
	case "login":
		return runLogin(ctx, app, args)
	case "logout":
		if err := app.Auth.Logout(); err != nil {
			return err
		}
		fmt.Println("로그아웃 되었습니다.")
		return nil
	case "whoami":
		return runWhoami(app)
	case "posts":
		return runPosts(ctx, app, args)
	case "post":
		return runPostDetail(ctx, app, args)
	case "write":
		return runWrite(ctx, app, args)
	case "edit":
		return runEdit(ctx, app, args)
	case "delete":
		return runDelete(ctx, app, args)
	case "comment":
		return runComment(ctx, app, args)
	case "uncomment":
		return runUncomment(ctx, app, args)
	default:
		usage()
		return fmt.Errorf("unknown command: %s", cmd)
	}
}

func runSignup(ctx context.Context, app *wire.ApplicationContainer, args []string) error {
	fs := flag.NewFlagSet("signup", flag.ExitOnError)
	userID := fs.String("id", "", "아이디 (영문 소문자/숫자, 5-20자)")
	password := fs.String("pw", "", "비밀번호 (최대 20자)")
	userName := fs.String("name", "", "별명 (2-10자, 한글/영문/숫자)")
	fs.Parse(args)

	form := &dto.SignupForm{
		UserID:          *userID,
		Password:        *password,
		PasswordConfirm: *password,
		UserName:        *userName,
	}

	fieldErrs, err := app.Auth.Signup(ctx, form)
	if err != nil {
		return err
	}
	if len(fieldErrs) > 0 {
		for field, msg := range fieldErrs {
			fmt.Fprintf(os.Stderr, "%s: %s\n", field, msg)
		}
		return errors.New("회원가입에 실패했습니다.")
	}

	fmt.Println("회원가입 성공!")
	return nil
}

func runLogin(ctx context.Context, app *wire.ApplicationContainer, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	userID := fs.String("id", "", "아이디")
	password := fs.String("pw", "", "비밀번호")
	remember := fs.Bool("remember", app.Auth.RememberMe(), "자동 로그인")
	fs.Parse(args)

	user, err := app.Auth.Login(ctx, &dto.LoginRequest{
		UserID:     *userID,
		Password:   *password,
		RememberMe: *remember,
	})
	if err != nil {
		return err
	}

	if *remember {
		fmt.Printf("로그인 성공! (30일간 자동 로그인) — %s\n", user.UserName)
	} else {
		fmt.Printf("로그인 성공! (24시간 유지) — %s\n", user.UserName)
	}
	return nil
}

func runWhoami(app *wire.ApplicationContainer) error {
	ok, err := app.Session.IsAuthenticated()
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("로그인되어 있지 않습니다.")
		return nil
	}
	user, err := app.Session.User()
	if err != nil {
		return err
	}
	if user != nil {
		fmt.Printf("%s (userIdx=%d)\n", user.UserName, user.UserIdx)
	}
	return nil
}

func runPosts(ctx context.Context, app *wire.ApplicationContainer, args []string) error {
	fs := flag.NewFlagSet("posts", flag.ExitOnError)
	page := fs.Int("page", 1, "페이지")
	limit := fs.Int("limit", 10, "페이지당 개수")
	fs.Parse(args)

	result, err := app.Posts.List(ctx, *page, *limit)
	if err != nil {
		return err
	}

	if len(result.Posts) == 0 {
		fmt.Println("게시글이 없습니다.")
		return nil
	}

	now := time.Now()
	for _, p := range result.Posts {
		label := util.FormatServerTimeRelative(p.CreatedAt, now)
		line := fmt.Sprintf("[%d] %s — %s · %s · 조회 %d", p.ID, p.Title, p.AuthorName, label, p.ViewCount)
		if p.Status == model.PostStatusDraft {
			line += " (임시저장)"
		}
		fmt.Println(line)
	}
	fmt.Printf("페이지 %d / %d\n", *page, result.TotalPages)
	return nil
}

func runPostDetail(ctx context.Context, app *wire.ApplicationContainer, args []string) error {
	fs := flag.NewFlagSet("post", flag.ExitOnError)
	id := fs.Int64("id", 0, "게시글 ID")
	fs.Parse(args)

	detail, err := app.Posts.Get(ctx, *id)
	if err != nil {
		return err
	}

	p := detail.Post
	fmt.Printf("%s\n%s · 조회 %d\n\n%s\n", p.Title, p.AuthorName, p.ViewCount, p.Content)

	images, documents := util.PartitionAttachments(detail.Attachments)
	if len(images) > 0 {
		fmt.Println("\n이미지:")
		for _, f := range images {
			fmt.Printf("  %s (%s) %s\n", f.FileName, f.FileSizeFormatted, f.FileURL)
		}
	}
	if len(documents) > 0 {
		fmt.Println("\n문서:")
		for _, f := range documents {
			fmt.Printf("  %s (%s)\n", f.FileName, f.FileSizeFormatted)
		}
	}

	thread := app.CommentThread(*id)
	if err := thread.Refresh(ctx); err != nil {
		log.WarnContext(ctx, "failed to load comments", "postId", *id, "err", err)
		return nil
	}

	comments := thread.Comments()
	fmt.Printf("\n댓글 %d\n", len(comments))
	now := time.Now()
	for _, c := range comments {
		fmt.Printf("  [%s] %s · %s: %s\n",
			util.NameInitial(c.Author), c.Author,
			util.FormatServerTimeRelative(c.CreatedAt, now), c.Content)
	}
	return nil
}

func writeDTO(fs *flag.FlagSet) (*dto.WritePostDTO, *dto.UploadFile, error) {
	title := fs.Lookup("title").Value.String()
	content := fs.Lookup("content").Value.String()
	draft := fs.Lookup("draft").Value.String() == "true"
	imagePath := fs.Lookup("image").Value.String()

	status := model.PostStatusPublished
	if draft {
		status = model.PostStatusDraft
	}
	d := &dto.WritePostDTO{Title: title, Content: content, Status: status}

	if imagePath == "" {
		return d, nil, nil
	}
	f, err := os.Open(imagePath)
	if err != nil {
		return nil, nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	fmt.Printf("대표 이미지: %s (%s)\n", info.Name(), util.FormatFileSize(info.Size()))
	return d, &dto.UploadFile{FileName: info.Name(), Reader: f}, nil
}

func newWriteFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	fs.String("title", "", "제목")
	fs.String("content", "", "내용")
	fs.Bool("draft", false, "임시저장")
	fs.String("image", "", "대표 이미지 파일 경로")
	return fs
}

// requireAuth 写入类命令在本地先挡未登录状态
func requireAuth(app *wire.ApplicationContainer) error {
	ok, err := app.Session.IsAuthenticated()
	if err != nil {
		return err
	}
	if !ok {
		return service.ErrNotAuthenticated
	}
	return nil
}

func runWrite(ctx context.Context, app *wire.ApplicationContainer, args []string) error {
	fs := newWriteFlagSet("write")
	fs.Parse(args)

	if err := requireAuth(app); err != nil {
		return err
	}

	d, image, err := writeDTO(fs)
	if err != nil {
		return err
	}
	if err := app.Posts.Create(ctx, d, image); err != nil {
		return err
	}
	if d.Status == model.PostStatusDraft {
		fmt.Println("임시 저장 완료")
	} else {
		fmt.Println("글이 등록되었습니다.")
	}
	return nil
}

func runEdit(ctx context.Context, app *wire.ApplicationContainer, args []string) error {
	fs := newWriteFlagSet("edit")
	id := fs.Int64("id", 0, "게시글 ID")
	fs.Parse(args)

	if err := requireAuth(app); err != nil {
		return err
	}

	d, image, err := writeDTO(fs)
	if err != nil {
		return err
	}
	if err := app.Posts.Update(ctx, *id, d, image); err != nil {
		return err
	}
	fmt.Println("글이 수정되었습니다.")
	return nil
}

func runDelete(ctx context.Context, app *wire.ApplicationContainer, args []string) error {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	id := fs.Int64("id", 0, "게시글 ID")
	yes := fs.Bool("yes", false, "확인 없이 삭제")
	fs.Parse(args)

	if !*yes && !confirm("정말로 삭제하시겠습니까?") {
		return nil
	}
	if err := app.Posts.Delete(ctx, *id); err != nil {
		return err
	}
	fmt.Println("게시글이 삭제되었습니다.")
	return nil
}

func runComment(ctx context.Context, app *wire.ApplicationContainer, args []string) error {
	fs := flag.NewFlagSet("comment", flag.ExitOnError)
	postID := fs.Int64("post", 0, "게시글 ID")
	content := fs.String("content", "", "댓글 내용")
	fs.Parse(args)

	if err := requireAuth(app); err != nil {
		return err
	}

	thread := app.CommentThread(*postID)
	if err := thread.Refresh(ctx); err != nil {
		return err
	}
	if err := thread.Create(ctx, *content); err != nil {
		return err
	}
	fmt.Println("댓글이 작성되었습니다.")
	return nil
}

func runUncomment(ctx context.Context, app *wire.ApplicationContainer, args []string) error {
	fs := flag.NewFlagSet("uncomment", flag.ExitOnError)
	postID := fs.Int64("post", 0, "게시글 ID")
	id := fs.Int64("id", 0, "댓글 ID")
	yes := fs.Bool("yes", false, "확인 없이 삭제")
	fs.Parse(args)

	if !*yes && !confirm("댓글을 삭제하시겠습니까?") {
		return nil
	}

	thread := app.CommentThread(*postID)
	if err := thread.Refresh(ctx); err != nil {
		return err
	}
	if err := thread.Delete(ctx, *id); err != nil {
		if errors.Is(err, service.ErrCommentNotOwned) || errors.Is(err, service.ErrCommentNotFound) {
			return err
		}
		return errors.New("삭제에 실패했습니다.")
	}
	fmt.Println("댓글이 삭제되었습니다.")
	return nil
}

func confirm(prompt string) bool {
	fmt.Printf("%s [y/N] ", prompt)
	var answer string
	fmt.Scanln(&answer)
	return answer == "y" || answer == "Y"
}
