package render

// CommandOp 绘制指令类型
type CommandOp int

const (
	OpDrawRect CommandOp = iota
	OpDrawText
	OpSetColor
	OpSaveColor
	OpRestoreColor
)

// String 返回指令类型名
func (op CommandOp) String() string {
	switch op {
	case OpDrawRect:
		return "DrawRect"
	case OpDrawText:
		return "DrawText"
	case OpSetColor:
		return "SetColor"
	case OpSaveColor:
		return "SaveColor"
	case OpRestoreColor:
		return "RestoreColor"
	default:
		return "Unknown"
	}
}

// Command 一条录制的绘制指令
// 仅与 Op 相关的字段有效
type Command struct {
	Op      CommandOp
	X, Y    float64
	W, H    float64
	Text    string
	Compact bool
	Color   ColorName
}

// CommandBuffer 录制绘制指令的 Renderer
//
// ebiten 的 Update 与 Draw 是分开的两个回调：
// 交互系统在 Update 中把指令录制到 CommandBuffer，
// Game.Draw 再调用 Replay 回放到真正的渲染器上。
// 测试中也直接用它断言指令序列。
type CommandBuffer struct {
	commands []Command
}

// NewCommandBuffer 创建空的指令缓冲
func NewCommandBuffer() *CommandBuffer {
	return &CommandBuffer{}
}

func (b *CommandBuffer) DrawRect(x, y, w, h float64) {
	b.commands = append(b.commands, Command{Op: OpDrawRect, X: x, Y: y, W: w, H: h})
}

func (b *CommandBuffer) DrawText(s string, x, y float64, opts TextOptions) {
	b.commands = append(b.commands, Command{Op: OpDrawText, X: x, Y: y, Text: s, Compact: opts.Compact})
}

func (b *CommandBuffer) SetColor(name ColorName) {
	b.commands = append(b.commands, Command{Op: OpSetColor, Color: name})
}

func (b *CommandBuffer) SaveColor() {
	b.commands = append(b.commands, Command{Op: OpSaveColor})
}

func (b *CommandBuffer) RestoreColor() {
	b.commands = append(b.commands, Command{Op: OpRestoreColor})
}

// Commands 返回已录制的指令（只读视图）
func (b *CommandBuffer) Commands() []Command {
	return b.commands
}

// Len 已录制的指令数
func (b *CommandBuffer) Len() int {
	return len(b.commands)
}

// Reset 清空指令，保留底层容量供下一帧复用
func (b *CommandBuffer) Reset() {
	b.commands = b.commands[:0]
}

// Replay 按录制顺序把指令回放到 r
func (b *CommandBuffer) Replay(r Renderer) {
	for _, c := range b.commands {
		switch c.Op {
		case OpDrawRect:
			r.DrawRect(c.X, c.Y, c.W, c.H)
		case OpDrawText:
			r.DrawText(c.Text, c.X, c.Y, TextOptions{Compact: c.Compact})
		case OpSetColor:
			r.SetColor(c.Color)
		case OpSaveColor:
			r.SaveColor()
		case OpRestoreColor:
			r.RestoreColor()
		}
	}
}

// ColorBalanced 检查 SaveColor/RestoreColor 是否成对且不嵌套
func (b *CommandBuffer) ColorBalanced() bool {
	saved := false
	for _, c := range b.commands {
		switch c.Op {
		case OpSaveColor:
			if saved {
				return false
			}
			saved = true
		case OpRestoreColor:
			if !saved {
				return false
			}
			saved = false
		}
	}
	return !saved
}
