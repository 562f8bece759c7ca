package services

// Prompt templates for the grounded answering and structured
// extraction modes. Both insist on the retrieved context only, so the
// model cannot dress up invented details as document facts.

const notSureResponse = "I am not sure based on the indexed documents. Try re-indexing or rephrasing the question."

// scheduleRetrievalQuery is the fixed retrieval query used for door
// schedule extraction regardless of how the user phrased the request.
const scheduleRetrievalQuery = "door schedule door openings doors"

const groundedAnswerPrompt = `You are a construction project assistant.
Use ONLY the context below from project documents.
If you are not sure, say you are not sure and do not invent details.

Context:
%s

Question: %s

Answer in 3-5 sentences. Explicitly mention which file and page you used.`

const doorScheduleSchema = `Return a JSON array of door objects. Each object has:
- mark: string (door mark / ID)
- location: string (e.g. Level 1 Corridor)
- width_mm: number or null
- height_mm: number or null
- fire_rating: string or null
- material: string or null`

const doorSchedulePrompt = `You are extracting a DOOR SCHEDULE from construction documents.

The user asked: %s

Context:
%s

Task:
From the context, extract all doors you can find and return them as JSON only,
following this schema:
` + doorScheduleSchema + `

Important:
- If a field is missing, use null.
- Ensure JSON is valid.
- Do not add any text before or after the JSON.`
