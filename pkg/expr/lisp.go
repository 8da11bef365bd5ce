// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package expr

import (
	"errors"
	"fmt"
	"unicode"

	"github.com/consensys/go-symple/pkg/util/math"
	"github.com/consensys/go-symple/pkg/util/source"
	"github.com/consensys/go-symple/pkg/util/source/sexp"
)

// Term represents a top-level item read from a source file, which is either a
// standalone expression or an equation.
type Term struct {
	Expr Expr
	// Right-hand side of the equation, or nil for a standalone expression.
	Rhs *math.Rational
	// Span of this term in the source file.
	Span source.Span
}

// IsEquation determines whether or not this term is an equation.
func (p *Term) IsEquation() bool {
	return p.Rhs != nil
}

// Equation returns this term as an equation.  Observe this will panic if the
// term is not an equation.
func (p *Term) Equation() Equation {
	if p.Rhs == nil {
		panic("term is not an equation")
	}
	//
	return Equation{p.Expr, *p.Rhs}
}

// ReadTerms reads all top-level terms from a given source file.  An equation
// is written "(== lhs rhs)" where rhs must be constant.  Any syntax errors
// arising are returned, along with the terms which were read successfully.
func ReadTerms(srcfile *source.File) ([]Term, []source.SyntaxError) {
	var (
		terms  []Term
		errors []source.SyntaxError
	)
	// Parse bytes into an S-Expression
	sexps, srcmap, err := sexp.ParseAll(srcfile)
	// Check for parsing errors
	if err != nil {
		return nil, []source.SyntaxError{*err}
	}
	//
	reader := newReader(srcmap)
	//
	for _, s := range sexps {
		term, errs := reader.readTerm(s)
		//
		if len(errs) == 0 {
			term.Span = srcmap.Get(s)
			terms = append(terms, term)
		}
		//
		errors = append(errors, errs...)
	}
	//
	return terms, errors
}

// ParseExpr parses a single expression from a given string.
func ParseExpr(input string) (Expr, error) {
	term, err := parseTerm(input)
	if err != nil {
		return nil, err
	} else if term.IsEquation() {
		return nil, errors.New("expected expression, found equation")
	}
	//
	return term.Expr, nil
}

// ParseEquation parses a single equation from a given string.
func ParseEquation(input string) (Equation, error) {
	term, err := parseTerm(input)
	if err != nil {
		return Equation{}, err
	} else if !term.IsEquation() {
		return Equation{}, errors.New("expected equation, found expression")
	}
	//
	return term.Equation(), nil
}

func parseTerm(input string) (Term, error) {
	srcfile := source.NewSourceFile("<input>", []byte(input))
	//
	terms, errs := ReadTerms(srcfile)
	//
	if len(errs) > 0 {
		return Term{}, &errs[0]
	} else if len(terms) != 1 {
		return Term{}, fmt.Errorf("expected one term, found %d", len(terms))
	}
	//
	return terms[0], nil
}

// ============================================================================
// Reader
// ============================================================================

type reader struct {
	translator *sexp.Translator[Expr]
}

func newReader(srcmap *source.Map[sexp.SExp]) *reader {
	p := sexp.NewTranslator[Expr](srcmap)
	// Symbols
	p.AddSymbolRule(variableRule)
	p.AddSymbolRule(literalRule)
	// Operators
	p.AddRecursiveListRule("+", naryRule(ADD))
	p.AddRecursiveListRule("*", naryRule(MUL))
	p.AddRecursiveListRule("-", subRule)
	p.AddRecursiveListRule("/", binaryRule(DIV))
	p.AddRecursiveListRule("^", binaryRule(POW))
	p.AddRecursiveListRule("**", binaryRule(POW))
	//
	return &reader{p}
}

func (p *reader) readTerm(s sexp.SExp) (Term, []source.SyntaxError) {
	if l := s.AsList(); l != nil && l.MatchSymbols(1, "==") {
		return p.readEquation(l)
	}
	//
	e, errs := p.translator.Translate(s)
	//
	return Term{Expr: e}, errs
}

func (p *reader) readEquation(l *sexp.List) (Term, []source.SyntaxError) {
	if l.Len() != 3 {
		return Term{}, p.translator.SyntaxErrors(l, "equation requires exactly two arguments")
	}
	//
	lhs, errs1 := p.translator.Translate(l.Get(1))
	rhs, errs2 := p.translator.Translate(l.Get(2))
	//
	if errs := append(errs1, errs2...); len(errs) > 0 {
		return Term{}, errs
	} else if rhs.ContainsVariable() {
		return Term{}, p.translator.SyntaxErrors(l.Get(2), "right-hand side must be constant")
	}
	//
	val, err := evaluate(rhs, nil)
	if err != nil {
		return Term{}, p.translator.SyntaxErrors(l.Get(2), err.Error())
	}
	//
	return Term{Expr: lhs, Rhs: &val}, nil
}

func variableRule(symbol string) (Expr, bool, error) {
	if symbol == VariableName {
		return Var(), true, nil
	}
	//
	return nil, false, nil
}

func literalRule(symbol string) (Expr, bool, error) {
	runes := []rune(symbol)
	// Literals start with a digit, or a minus sign followed by a digit.
	if len(runes) > 1 && runes[0] == '-' {
		runes = runes[1:]
	}
	//
	if !unicode.IsDigit(runes[0]) {
		return nil, false, nil
	}
	//
	val, err := math.ParseRational(symbol)
	if err != nil {
		return nil, true, err
	}
	//
	return Lit(val), true, nil
}

// N-ary operators are left associative, such that "(+ a b c)" is "(a + b) + c".
func naryRule(op Operator) sexp.RecursiveRule[Expr] {
	return func(name string, args []Expr) (Expr, error) {
		if len(args) < 2 {
			return nil, fmt.Errorf("operator \"%s\" requires at least two arguments", name)
		}
		//
		e := args[0]
		//
		for _, arg := range args[1:] {
			e = Apply(op, e, arg)
		}
		//
		return e, nil
	}
}

func binaryRule(op Operator) sexp.RecursiveRule[Expr] {
	return func(name string, args []Expr) (Expr, error) {
		if len(args) != 2 {
			return nil, fmt.Errorf("operator \"%s\" requires exactly two arguments", name)
		}
		//
		return Apply(op, args[0], args[1]), nil
	}
}

func subRule(name string, args []Expr) (Expr, error) {
	switch len(args) {
	case 1:
		return Neg(args[0]), nil
	case 2:
		return Sub(args[0], args[1]), nil
	default:
		return nil, fmt.Errorf("operator \"%s\" requires one or two arguments", name)
	}
}
