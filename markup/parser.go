package markup

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"
)

// ErrMalformed 表示标记文档无法解析（词法/语法错误或标签不匹配）。
var ErrMalformed = errors.New("markup: malformed document")

// BreakTag 是显式换行标签名；源文本中的换行符会被归一化为该标签。
const BreakTag = "br"

var (
	markupLexer = lexer.MustStateful(lexer.Rules{
		"Root": {
			{Name: "Comment", Pattern: `<!--(?s:.*?)-->`},
			{Name: "EndOpen", Pattern: `</`, Action: lexer.Push("Tag")},
			{Name: "Open", Pattern: `<`, Action: lexer.Push("Tag")},
			{Name: "Text", Pattern: `[^<]+`},
		},
		"Tag": {
			{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
			{Name: "SelfClose", Pattern: `/>`, Action: lexer.Pop()},
			{Name: "Close", Pattern: `>`, Action: lexer.Pop()},
			{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_:.-]*`},
			{Name: "Equals", Pattern: `=`},
			{Name: "String", Pattern: `"[^"]*"|'[^']*'`},
			{Name: "Bare", Pattern: `[^\s"'=<>/]+`},
		},
	})

	streamParser = participle.MustBuild[tokenStream](
		participle.Lexer(markupLexer),
		participle.Elide("Whitespace", "Comment"),
		participle.UseLookahead(2),
	)
)

// tokenStream 是扁平的标签/文本序列，树结构在 build 中恢复。
type tokenStream struct {
	Items []*item `parser:"@@*"`
}

type item struct {
	Pos   lexer.Position `parser:""`
	End   *endTag        `parser:"  '</' @@"`
	Start *startTag      `parser:"| '<' @@"`
	Text  *string        `parser:"| @Text"`
}

type endTag struct {
	Name string `parser:"@Ident '>'"`
}

type startTag struct {
	Name        string       `parser:"@Ident"`
	Attrs       []*attribute `parser:"@@*"`
	SelfClosing bool         `parser:"( @'/>' | '>' )"`
}

type attribute struct {
	Key   string     `parser:"@Ident"`
	Value *attrValue `parser:"( '=' @@ )?"`
}

type attrValue struct {
	Quoted *string `parser:"  @String"`
	Bare   *string `parser:"| @( Ident | Bare )"`
}

func (v *attrValue) text() string {
	switch {
	case v == nil:
		return ""
	case v.Quoted != nil:
		s := *v.Quoted
		return html.UnescapeString(s[1 : len(s)-1])
	case v.Bare != nil:
		return html.UnescapeString(*v.Bare)
	default:
		return ""
	}
}

// Normalize 去掉回车符，并把换行符替换为显式的 <br> 标记，使源文本中的
// 换行与 <br> 标签等价。文本同时做 NFC 规范化。
func Normalize(raw string) string {
	s := strings.ReplaceAll(raw, "\r", "")
	s = strings.ReplaceAll(s, "\n", "<"+BreakTag+">")
	return norm.NFC.String(s)
}

// Parse 读取完整的标记文本并返回文档根节点。
func Parse(r io.Reader) (*Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("读取标记文本失败: %w", err)
	}
	return ParseString(string(data))
}

// ParseString 解析标记字符串并返回文档根节点。
func ParseString(input string) (*Node, error) {
	stream, err := streamParser.ParseString("", Normalize(input))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return build(stream)
}

// build 用栈把扁平序列恢复为树；br 为空元素，不需要闭合。
func build(stream *tokenStream) (*Node, error) {
	root := &Node{}
	stack := []*Node{root}
	top := func() *Node { return stack[len(stack)-1] }

	for _, it := range stream.Items {
		switch {
		case it.Text != nil:
			content := html.UnescapeString(*it.Text)
			if content == "" {
				continue
			}
			top().Children = append(top().Children, &Node{Text: content, Pos: it.Pos})

		case it.Start != nil:
			el := &Node{Name: strings.ToLower(it.Start.Name), Pos: it.Pos}
			for _, a := range it.Start.Attrs {
				el.Attrs = append(el.Attrs, Attribute{
					Key:      strings.ToLower(a.Key),
					Value:    a.Value.text(),
					HasValue: a.Value != nil,
				})
			}
			top().Children = append(top().Children, el)
			if !it.Start.SelfClosing && el.Name != BreakTag {
				stack = append(stack, el)
			}

		case it.End != nil:
			name := strings.ToLower(it.End.Name)
			if name == BreakTag {
				// </br> 在 HTML 中按换行处理
				top().Children = append(top().Children, &Node{Name: BreakTag, Pos: it.Pos})
				continue
			}
			if len(stack) == 1 || top().Name != name {
				return nil, fmt.Errorf("%w: %s: unexpected </%s>", ErrMalformed, it.Pos, name)
			}
			stack = stack[:len(stack)-1]
		}
	}

	if len(stack) > 1 {
		open := top()
		return nil, fmt.Errorf("%w: %s: <%s> is never closed", ErrMalformed, open.Pos, open.Name)
	}
	return root, nil
}
