/*
Package langdef converts a textual grammar description to a grammar.Grammar structure.

Grammar is described using a language resembling EBNF. Self-definition of this language is:
*/
//  $space = /[ \r\n\t\f]+/; $comment = /#[^\n]*/;
//  $string = /(?:".*?")|(?:'.*?')/;
//  $name = /[a-zA-Z_][a-zA-Z_0-9-]*/;
//  $dir = /!(?:aside|caseless|error|group|include)\b/;
//  $token-name = /\$[a-zA-Z_][a-zA-Z_0-9-]*/;
//  $regexp = /\/(?:[^\\\/]|\\.)+\//;
//  $op = /[(){}\[\]=|,;]/;
//  $error = /["'!].{0,10}/;
//
//  !aside $space $comment; !error $error;
//
//  # the first node is the root one
//  # no further token definitions or directives allowed after this point
//  langdef = {directive | token-definition}, node-definition, {node-definition};
//  directive = $dir, {$token-name}, ';';
//  token-definition = $token-name, '=', $regexp, ';';
//  node-definition = $name, '=', sequence, ';';
//  sequence = item, {',', item};
//  item = variant, {'|', variant}; # NB: foo | bar, baz is equal to (foo|bar), baz
//  variant = $name | $token-name | $string | group | optional | repeat;
//  group = '(', sequence, ')';
//  optional = '[', sequence, ']'; # match 0 or 1 time
//  repeat = '{', sequence, '}';   # match 0 or more times
/*
A description contains three kinds of records: token type definitions, directives,
and node definitions. All token definitions and directives must precede node
definitions. The first defined node is the root of the grammar.

Token type definition has the form

	$type-name = /regexp/ ;

Regular expression literals are RE2 expressions delimited with slashes; escape
inner slashes with backslashes. Expressions must not contain capturing groups
(use non-capturing (?:...) groups instead). By default token expressions use
the s flag (. matches line breaks). Token definition order is significant: the
lexer returns the first defined token type that matches.

Node definition has the form

	node-name = list ;

A list is one or more comma-separated items; an item is one or more variants
separated by | ; a variant is a node name, a token type, a string literal, or
a nested list in round (plain grouping), square (optional), or curly (repeated)
braces. When several variants can start with the same token, the first one
wins: alternatives are ordered choice decided by one token of lookahead.

A string literal matches a token whose text equals the literal; the literal is
associated with the first defined token type whose regular expression matches
its text in full. Literals for case-insensitive types compare case-insensitively.

Directives:

!aside lists token types that do not affect syntax (whitespace, comments).
Aside tokens must not be used in node definitions and belong to every token group.

!caseless lists token types holding case-insensitive text.

!error lists error token types: fetching one aborts lexing with a diagnostic
containing the token text. Useful for catching broken lexemes with a precise message.

!group starts a new token group listing its member types. Tokens not listed in
any !group directive form group 0. Each group is lexed by its own lexer, and
the parser picks the group of the tokens it expects, which allows overlapping
token definitions (e.g. a bare file path token only where a path may appear).
There may be no more than 30 groups.

!include designates exactly one token type as the include directive: wherever a
token of this type is produced, its text names a file whose contents are lexed
and spliced into the token stream before the current file resumes (see the
include package). The token itself is still emitted, so node definitions must
mention it.

Each token type mentioned in a description must be defined exactly once; each
node must be defined exactly once and, except for the root, referenced at
least once. Left-recursive node definitions are rejected when the parser for
the grammar is constructed.
*/
package langdef
