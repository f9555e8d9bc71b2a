package postfix

import (
	"strconv"
	"strings"

	"github.com/Sunflower-Dolls/Vapoursynth-llvmexpr/token"
	"github.com/Sunflower-Dolls/Vapoursynth-llvmexpr/vmabi"
)

// stackOps names the opcodes lexed as KindStack rather than KindArith.
// Everything else vmabi.OpContract recognizes is arithmetic/comparison.
var stackOps = map[string]bool{
	"dup": true, "drop": true, "swap": true, "over": true,
}

// planeLetters maps the single-letter clip-reference surface syntax to
// its plane index, following the host's x/y/z/a/b/... clip-ordering
// convention.
var planeLetters = "xyzabcdefghijklmnopqrstuvw"

// Parse lexes and parses postfix source text into a token.Stream. It
// never stops at the first mistake: every malformed lexeme is recorded
// and, if any were found, Parse returns a non-empty ErrorList alongside
// the partial stream.
func Parse(src string) (token.Stream, error) {
	words := lex(src)
	var errs ErrorList
	stream := make(token.Stream, 0, len(words))

	emit := func(k token.Kind, text string, payload token.Payload) {
		stream = append(stream, token.Token{
			Kind:        k,
			Text:        text,
			SourceIndex: len(stream),
			Payload:     payload,
		})
	}

	for i := 0; i < len(words); i++ {
		w := words[i]
		text := w.text

		switch {
		case text == "return" || text == "^":
			emit(token.KindTerminal, text, nil)

		case text == "jmp" || text == "jz":
			if i+1 >= len(words) {
				errs.add(w.pos, "%q requires a target label", text)
				continue
			}
			i++
			target := words[i].text
			if text == "jmp" {
				emit(token.KindJump, text, token.JumpPayload{Target: target})
			} else {
				emit(token.KindBranch, text, token.JumpPayload{Target: target})
			}

		case strings.HasPrefix(text, "#") && strings.HasSuffix(text, ":"):
			name := text[1 : len(text)-1]
			if name == "" {
				errs.add(w.pos, "empty label name in %q", text)
				continue
			}
			emit(token.KindLabelDef, text, token.LabelPayload{Name: name})

		case strings.HasSuffix(text, "@") && len(text) > 1:
			name := text[:len(text)-1]
			emit(token.KindPropLoad, text, token.PropLoadPayload{PropName: name})

		case strings.Contains(text, "!") && text != "!=":
			parts := strings.SplitN(text, "!", 2)
			name, suffix := parts[0], parts[1]
			pt, ok := token.ParsePropType(suffix)
			if name == "" || !ok {
				errs.add(w.pos, "malformed property store %q, want NAME!{f,i,af,ai}", text)
				continue
			}
			emit(token.KindPropStore, text, token.PropStorePayload{PropName: name, PropType: pt})

		case isPixelAccess(text):
			plane := strings.Index(planeLetters, text[:1])
			mode := token.AccessSingle
			if strings.HasSuffix(text, "[]") {
				mode = token.AccessExpr
			}
			emit(token.KindPixelAccess, text, token.PixelAccessPayload{Plane: plane, Mode: mode})

		case isNumber(text):
			v, err := strconv.ParseFloat(text, 64)
			if err != nil {
				errs.add(w.pos, "malformed numeric literal %q: %v", text, err)
				continue
			}
			emit(token.KindConst, text, token.ConstPayload{Value: v})

		case stackOps[text]:
			emit(token.KindStack, text, token.OpPayload{Name: text})

		default:
			if _, ok := vmabi.OpContract(text); ok {
				emit(token.KindArith, text, token.OpPayload{Name: text})
				continue
			}
			errs.add(w.pos, "unrecognized token %q", text)
		}
	}

	if len(errs) > 0 {
		return stream, errs
	}
	return stream, nil
}

func isNumber(s string) bool {
	if s == "" {
		return false
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

func isPixelAccess(s string) bool {
	base := strings.TrimSuffix(s, "[]")
	if len(base) != 1 {
		return false
	}
	return strings.Contains(planeLetters, base)
}
