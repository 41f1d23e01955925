package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/logrusorgru/aurora"
	"go.uber.org/zap"

	"qirkat/internal/config"
	"qirkat/internal/engine"
	"qirkat/internal/qirkat"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrBadArgs        = errors.New("bad arguments")
	ErrNotYourTurn    = errors.New("side to move is not a manual player")
)

const helpText = `Commands:
  clear                 back to the initial position, stop playing
  start                 start playing from the current position
  set <side> <board>    load 25 squares (b/w/-, bottom row first), side to move next
  manual <side>         <side> moves come from input
  auto <side>           <side> moves come from the AI
  dump                  print the board
  undo                  take back the last move
  <move>                e.g. c2-c3 or a1-c1-c3
  help                  this text
  quit                  exit`

// Options 控制一次会话
type Options struct {
	White string // config.PlayerManual / config.PlayerAuto
	Black string
	Color bool // dump 时给棋子上色
}

// Session 是文字命令循环：从 in 读命令，往 out 写结果。
// 轮到 auto 一方时调用引擎，人走的着法和 AI 的着法都经过 LegalMove 校验。
type Session struct {
	in  *bufio.Scanner
	out io.Writer
	log *zap.SugaredLogger
	au  aurora.Aurora

	board   *qirkat.Board
	eng     *engine.Engine
	players map[qirkat.PieceColor]string
	playing bool
}

func New(in io.Reader, out io.Writer, eng *engine.Engine, opts Options, log *zap.SugaredLogger) *Session {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	if opts.White == "" {
		opts.White = config.PlayerManual
	}
	if opts.Black == "" {
		opts.Black = config.PlayerAuto
	}
	return &Session{
		in:    bufio.NewScanner(in),
		out:   out,
		log:   log,
		au:    aurora.NewAurora(opts.Color),
		board: qirkat.NewBoard(),
		eng:   eng,
		players: map[qirkat.PieceColor]string{
			qirkat.White: strings.ToLower(opts.White),
			qirkat.Black: strings.ToLower(opts.Black),
		},
	}
}

// Board 返回会话棋盘的只读视图
func (s *Session) Board() qirkat.View { return s.board.ConstantView() }

// Run 一直跑到 quit 或输入结束
func (s *Session) Run() error {
	for {
		s.playAuto()

		s.prompt()
		if !s.in.Scan() {
			return s.in.Err()
		}
		line := strings.TrimSpace(s.in.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		quit, err := s.Exec(line)
		if err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
		}
		if quit {
			return nil
		}
	}
}

func (s *Session) prompt() {
	if s.playing && !s.board.GameOver() {
		fmt.Fprintf(s.out, "%s: ", s.board.WhoseMove())
		return
	}
	fmt.Fprint(s.out, "-> ")
}

// Exec 执行一条命令；返回 true 表示要退出
func (s *Session) Exec(line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "quit", "exit":
		return true, nil
	case "help", "?":
		fmt.Fprintln(s.out, helpText)
	case "clear":
		s.board.Clear()
		s.playing = false
	case "start":
		s.playing = true
	case "set":
		if len(args) < 2 {
			return false, fmt.Errorf("%w: set <side> <board>", ErrBadArgs)
		}
		side, err := qirkat.ParseColor(args[0])
		if err != nil {
			return false, err
		}
		if err := s.board.SetContents(strings.Join(args[1:], ""), side); err != nil {
			return false, err
		}
		s.playing = false
	case "manual", "auto":
		if len(args) != 1 {
			return false, fmt.Errorf("%w: %s <side>", ErrBadArgs, cmd)
		}
		side, err := qirkat.ParseColor(args[0])
		if err != nil {
			return false, err
		}
		s.players[side] = cmd
	case "dump":
		s.dump()
	case "undo":
		if s.board.HistoryLen() == 0 {
			return false, fmt.Errorf("%w: nothing to undo", ErrBadArgs)
		}
		s.board.Undo()
	default:
		if strings.Contains(cmd, "-") {
			return false, s.manualMove(cmd)
		}
		return false, fmt.Errorf("%w: %q", ErrUnknownCommand, fields[0])
	}
	return false, nil
}

func (s *Session) manualMove(text string) error {
	mv, err := qirkat.ParseMove(text)
	if err != nil {
		return err
	}
	side := s.board.WhoseMove()
	if s.players[side] != config.PlayerManual {
		return fmt.Errorf("%w: %s", ErrNotYourTurn, side)
	}
	if !s.board.MakeMove(mv) {
		return fmt.Errorf("%w: %s", qirkat.ErrIllegalMove, mv)
	}
	s.playing = true
	s.checkGameOver()
	return nil
}

// playAuto 只要在对局中且轮到 auto 一方就一直让 AI 走
func (s *Session) playAuto() {
	for s.playing && !s.board.GameOver() {
		side := s.board.WhoseMove()
		if s.players[side] != config.PlayerAuto {
			return
		}
		res := s.eng.Search(s.board.ConstantView(), side)
		if res.Move == nil || !s.board.MakeMove(res.Move) {
			s.log.Errorw("engine produced no usable move", "side", side, "move", res.Move.String())
			s.playing = false
			return
		}
		fmt.Fprintf(s.out, "%s moves %s.\n", side, res.Move)
		s.log.Debugw("ai move", "side", side, "move", res.Move.String(), "score", res.Score, "nodes", res.Nodes)
		s.checkGameOver()
	}
}

func (s *Session) checkGameOver() {
	if !s.board.GameOver() {
		return
	}
	fmt.Fprintf(s.out, "%s wins.\n", s.board.Winner())
	s.playing = false
}

// dump 按 ===/棋盘/=== 的格式输出
func (s *Session) dump() {
	fmt.Fprintln(s.out, "===")
	fmt.Fprintln(s.out, s.colorize(s.board.String()))
	fmt.Fprintln(s.out, "===")
}

func (s *Session) colorize(text string) string {
	var sb strings.Builder
	for _, r := range text {
		switch r {
		case 'w':
			sb.WriteString(s.au.Bold(s.au.White("w")).String())
		case 'b':
			sb.WriteString(s.au.Bold(s.au.Red("b")).String())
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
